package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/auth"
	"github.com/ismavld/esport-tournament/internal/middleware"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"github.com/ismavld/esport-tournament/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

type handlerTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

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

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, testSecret, time.Hour))
	teamHandler := NewTeamHandler(services.NewTeamService(teamRepo, userRepo))
	tournamentHandler := NewTournamentHandler(services.NewTournamentService(tournamentRepo, regRepo))
	registrationHandler := NewRegistrationHandler(services.NewRegistrationService(regRepo, tournamentRepo, teamRepo, userRepo))
	statsHandler := NewStatsHandler(services.NewStatsService(tournamentRepo, regRepo))

	r := gin.New()
	requireAuth := middleware.RequireAuth(testSecret)

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/teams", teamHandler.ListTeams)
		api.POST("/teams", requireAuth, teamHandler.CreateTeam)

		api.GET("/tournaments", tournamentHandler.ListTournaments)
		api.GET("/tournaments/:id", tournamentHandler.GetTournament)
		api.POST("/tournaments", requireAuth, middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin), tournamentHandler.CreateTournament)
		api.PATCH("/tournaments/:id/status", requireAuth, tournamentHandler.UpdateStatus)
		api.POST("/tournaments/:id/register", requireAuth, registrationHandler.Register)
		api.GET("/tournaments/:id/registrations", requireAuth, registrationHandler.ListRegistrations)
		api.PATCH("/tournaments/:id/registrations/:registrationId", requireAuth, registrationHandler.UpdateStatus)
		api.GET("/tournaments/:id/stats", requireAuth, statsHandler.GetTournamentStats)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return handlerTestEnv{db: db, router: r}
}

func (env handlerTestEnv) createUser(t *testing.T, username string, role models.UserRole) (*models.User, string) {
	t.Helper()

	user := &models.User{
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: "not-a-real-hash",
		Role:         role,
	}
	require.NoError(t, env.db.Create(user).Error)

	token, err := auth.Sign(user.ID, user.Role, testSecret, time.Hour)
	require.NoError(t, err)

	return user, token
}

func (env handlerTestEnv) request(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}
