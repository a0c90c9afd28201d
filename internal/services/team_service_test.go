package services

import (
	"testing"

	apierrors "github.com/ismavld/esport-tournament/internal/errors"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam(t *testing.T) {
	env := setupServiceTestEnv(t)
	player := env.createUser(t, "player", models.RolePlayer)

	team, err := env.teamService.CreateTeam(CreateTeamInput{
		Name: "The Sharks",
		Tag:  "shk",
	}, actorFor(player))
	require.NoError(t, err)
	require.Equal(t, "The Sharks", team.Name)
	require.Equal(t, "SHK", team.Tag)
	require.Equal(t, player.ID, team.CaptainID)
}

func TestCreateTeamOnlyPlayers(t *testing.T) {
	env := setupServiceTestEnv(t)
	organizer := env.createUser(t, "organizer", models.RoleOrganizer)

	_, err := env.teamService.CreateTeam(CreateTeamInput{
		Name: "The Sharks",
		Tag:  "SHK",
	}, actorFor(organizer))
	require.Equal(t, apierrors.KindValidation, apierrors.KindOf(err))
}

func TestCreateTeamDuplicateName(t *testing.T) {
	env := setupServiceTestEnv(t)
	p1 := env.createUser(t, "player1", models.RolePlayer)
	p2 := env.createUser(t, "player2", models.RolePlayer)

	_, err := env.teamService.CreateTeam(CreateTeamInput{Name: "The Sharks", Tag: "SHK"}, actorFor(p1))
	require.NoError(t, err)

	_, err = env.teamService.CreateTeam(CreateTeamInput{Name: "The Sharks", Tag: "TSK"}, actorFor(p2))
	require.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))
}

func TestUpdateTeam(t *testing.T) {
	env := setupServiceTestEnv(t)
	captain := env.createUser(t, "captain", models.RolePlayer)
	team := env.createTeam(t, "The Sharks", "SHK", captain.ID)

	name := "The Orcas"
	tag := "orc"
	updated, err := env.teamService.UpdateTeam(team.ID, UpdateTeamInput{Name: &name, Tag: &tag}, actorFor(captain))
	require.NoError(t, err)
	require.Equal(t, "The Orcas", updated.Name)
	require.Equal(t, "ORC", updated.Tag)
}

func TestUpdateTeamForbiddenForNonCaptain(t *testing.T) {
	env := setupServiceTestEnv(t)
	captain := env.createUser(t, "captain", models.RolePlayer)
	outsider := env.createUser(t, "outsider", models.RolePlayer)
	admin := env.createUser(t, "admin", models.RoleAdmin)
	team := env.createTeam(t, "The Sharks", "SHK", captain.ID)

	name := "Hijacked"
	_, err := env.teamService.UpdateTeam(team.ID, UpdateTeamInput{Name: &name}, actorFor(outsider))
	require.Equal(t, apierrors.KindForbidden, apierrors.KindOf(err))

	// Admins bypass ownership
	_, err = env.teamService.UpdateTeam(team.ID, UpdateTeamInput{Name: &name}, actorFor(admin))
	require.NoError(t, err)
}

func TestDeleteTeam(t *testing.T) {
	env := setupServiceTestEnv(t)
	captain := env.createUser(t, "captain", models.RolePlayer)
	team := env.createTeam(t, "The Sharks", "SHK", captain.ID)

	require.NoError(t, env.teamService.DeleteTeam(team.ID, actorFor(captain)))

	_, err := env.teamService.GetTeam(team.ID)
	require.Equal(t, apierrors.KindNotFound, apierrors.KindOf(err))
}

func TestDeleteTeamWithActiveRegistrationConflict(t *testing.T) {
	env := setupServiceTestEnv(t)
	organizer := env.createUser(t, "organizer", models.RoleOrganizer)
	captain := env.createUser(t, "captain", models.RolePlayer)
	team := env.createTeam(t, "The Sharks", "SHK", captain.ID)
	tournament := env.createTournament(t, organizer.ID, models.FormatTeam, 8, models.TournamentStatusOpen)

	env.createRegistration(t, tournament.ID, nil, &team.ID, models.RegistrationStatusConfirmed)

	err := env.teamService.DeleteTeam(team.ID, actorFor(captain))
	require.Equal(t, apierrors.KindConflict, apierrors.KindOf(err))
}

func TestDeleteTeamWithWithdrawnRegistrationAllowed(t *testing.T) {
	env := setupServiceTestEnv(t)
	organizer := env.createUser(t, "organizer", models.RoleOrganizer)
	captain := env.createUser(t, "captain", models.RolePlayer)
	team := env.createTeam(t, "The Sharks", "SHK", captain.ID)
	tournament := env.createTournament(t, organizer.ID, models.FormatTeam, 8, models.TournamentStatusOpen)

	env.createRegistration(t, tournament.ID, nil, &team.ID, models.RegistrationStatusWithdrawn)

	require.NoError(t, env.teamService.DeleteTeam(team.ID, actorFor(captain)))
}
