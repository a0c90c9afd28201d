package authz

import (
	"testing"

	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCanManage(t *testing.T) {
	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	player := Actor{UserID: 2, Role: models.RolePlayer}

	require.True(t, CanManage(admin, RelationNone))
	require.True(t, CanManage(admin, RelationOwner))
	require.True(t, CanManage(player, RelationOwner))
	require.True(t, CanManage(player, RelationParticipant))
	require.False(t, CanManage(player, RelationNone))
}

func TestTournamentRelation(t *testing.T) {
	tournament := &models.Tournament{OrganizerID: 10}

	require.Equal(t, RelationOwner, TournamentRelation(Actor{UserID: 10}, tournament))
	require.Equal(t, RelationNone, TournamentRelation(Actor{UserID: 11}, tournament))
}

func TestRegistrationRelation(t *testing.T) {
	playerID := uint64(20)
	teamID := uint64(30)

	soloReg := &models.Registration{
		Tournament: models.Tournament{OrganizerID: 10},
		PlayerID:   &playerID,
	}
	teamReg := &models.Registration{
		Tournament: models.Tournament{OrganizerID: 10},
		TeamID:     &teamID,
		Team:       &models.Team{ID: teamID, CaptainID: 21},
	}

	require.Equal(t, RelationOwner, RegistrationRelation(Actor{UserID: 10}, soloReg))
	require.Equal(t, RelationParticipant, RegistrationRelation(Actor{UserID: 20}, soloReg))
	require.Equal(t, RelationNone, RegistrationRelation(Actor{UserID: 99}, soloReg))

	require.Equal(t, RelationOwner, RegistrationRelation(Actor{UserID: 10}, teamReg))
	require.Equal(t, RelationParticipant, RegistrationRelation(Actor{UserID: 21}, teamReg))
	require.Equal(t, RelationNone, RegistrationRelation(Actor{UserID: 22}, teamReg))
}

func TestTeamRelation(t *testing.T) {
	team := &models.Team{CaptainID: 5}

	require.Equal(t, RelationOwner, TeamRelation(Actor{UserID: 5}, team))
	require.Equal(t, RelationNone, TeamRelation(Actor{UserID: 6}, team))
}

func TestCanComplete(t *testing.T) {
	require.True(t, CanComplete(Actor{Role: models.RoleAdmin}))
	require.False(t, CanComplete(Actor{Role: models.RoleOrganizer}))
	require.False(t, CanComplete(Actor{Role: models.RolePlayer}))
}
