package services

import (
	"testing"
	"time"

	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type serviceTestEnv struct {
	db *gorm.DB

	userRepo       repository.UserRepository
	teamRepo       repository.TeamRepository
	tournamentRepo repository.TournamentRepository
	regRepo        repository.RegistrationRepository

	authService         *AuthService
	teamService         *TeamService
	tournamentService   *TournamentService
	registrationService *RegistrationService
	statsService        *StatsService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Tournament{},
		&models.Registration{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return serviceTestEnv{
		db:                  db,
		userRepo:            userRepo,
		teamRepo:            teamRepo,
		tournamentRepo:      tournamentRepo,
		regRepo:             regRepo,
		authService:         NewAuthService(userRepo, "test-secret", time.Hour),
		teamService:         NewTeamService(teamRepo, userRepo),
		tournamentService:   NewTournamentService(tournamentRepo, regRepo),
		registrationService: NewRegistrationService(regRepo, tournamentRepo, teamRepo, userRepo),
		statsService:        NewStatsService(tournamentRepo, regRepo),
	}
}

func (env serviceTestEnv) createUser(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env serviceTestEnv) createTeam(t *testing.T, name, tag string, captainID uint64) *models.Team {
	t.Helper()

	team := &models.Team{Name: name, Tag: tag, CaptainID: captainID}
	require.NoError(t, env.db.Create(team).Error)
	return team
}

func (env serviceTestEnv) createTournament(t *testing.T, organizerID uint64, format models.TournamentFormat, max int, status models.TournamentStatus) *models.Tournament {
	t.Helper()

	tournament := &models.Tournament{
		Name:            "Test Cup",
		Game:            "Test Game",
		Format:          format,
		MaxParticipants: max,
		StartDate:       time.Now().Add(48 * time.Hour),
		Status:          status,
		OrganizerID:     organizerID,
	}
	require.NoError(t, env.db.Create(tournament).Error)
	return tournament
}

func (env serviceTestEnv) createRegistration(t *testing.T, tournamentID uint64, playerID, teamID *uint64, status models.RegistrationStatus) *models.Registration {
	t.Helper()

	reg := &models.Registration{
		TournamentID: tournamentID,
		PlayerID:     playerID,
		TeamID:       teamID,
		Status:       status,
		RegisteredAt: time.Now(),
	}
	require.NoError(t, env.db.Create(reg).Error)
	return reg
}
