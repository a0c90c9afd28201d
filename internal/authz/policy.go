// Package authz holds the pure authorization policy shared by the tournament
// and registration lifecycles. Decisions depend only on the actor's role and
// the actor's relation to the resource, never on storage state, so the whole
// decision table is unit-testable in isolation.
package authz

import "github.com/ismavld/esport-tournament/internal/models"

// Actor is the resolved identity attached to a request.
type Actor struct {
	UserID uint64
	Role   models.UserRole
}

// IsAdmin reports whether the actor holds the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Relation describes how an actor relates to a resource.
type Relation int

const (
	// RelationNone means the actor neither owns nor participates in the
	// resource.
	RelationNone Relation = iota
	// RelationOwner means the actor organizes the tournament or captains the
	// team in question.
	RelationOwner
	// RelationParticipant means the actor is the registered player or the
	// captain of the registered team.
	RelationParticipant
)

// CanManage is the core decision: admins may do anything, owners and
// participants may act on their own resources, everyone else is denied.
func CanManage(actor Actor, rel Relation) bool {
	if actor.IsAdmin() {
		return true
	}
	return rel != RelationNone
}

// TournamentRelation resolves the actor's relation to a tournament.
func TournamentRelation(actor Actor, t *models.Tournament) Relation {
	if t.OrganizerID == actor.UserID {
		return RelationOwner
	}
	return RelationNone
}

// RegistrationRelation resolves the actor's relation to a registration. The
// tournament's organizer counts as owner; the registered player or the
// registered team's captain counts as participant. The registration must be
// loaded with its Tournament and, for team entries, its Team.
func RegistrationRelation(actor Actor, reg *models.Registration) Relation {
	if reg.Tournament.OrganizerID == actor.UserID {
		return RelationOwner
	}
	if reg.PlayerID != nil && *reg.PlayerID == actor.UserID {
		return RelationParticipant
	}
	if reg.Team != nil && reg.Team.CaptainID == actor.UserID {
		return RelationParticipant
	}
	return RelationNone
}

// TeamRelation resolves the actor's relation to a team.
func TeamRelation(actor Actor, team *models.Team) Relation {
	if team.CaptainID == actor.UserID {
		return RelationOwner
	}
	return RelationNone
}

// CanComplete gates the ONGOING -> COMPLETED tournament transition, which is
// reserved for admins regardless of ownership.
func CanComplete(actor Actor) bool {
	return actor.IsAdmin()
}
