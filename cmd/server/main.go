package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/ismavld/esport-tournament/internal/config"
	"github.com/ismavld/esport-tournament/internal/database"
	"github.com/ismavld/esport-tournament/internal/handlers"
	"github.com/ismavld/esport-tournament/internal/middleware"
	"github.com/ismavld/esport-tournament/internal/models"
	"github.com/ismavld/esport-tournament/internal/repository"
	"github.com/ismavld/esport-tournament/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	tournamentRepo := repository.NewTournamentRepository(db)
	regRepo := repository.NewRegistrationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpire)
	teamService := services.NewTeamService(teamRepo, userRepo)
	tournamentService := services.NewTournamentService(tournamentRepo, regRepo)
	registrationService := services.NewRegistrationService(regRepo, tournamentRepo, teamRepo, userRepo)
	statsService := services.NewStatsService(tournamentRepo, regRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Initialize Gin router
	r := gin.Default()

	requireAuth := middleware.RequireAuth(cfg.JWTSecret)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Tournament API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// User directory
		api.GET("/users", authHandler.ListUsers)

		// Team routes
		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", requireAuth, teamHandler.CreateTeam)
			teams.PUT("/:id", requireAuth, teamHandler.UpdateTeam)
			teams.DELETE("/:id", requireAuth, teamHandler.DeleteTeam)
		}

		// Tournament routes
		tournaments := api.Group("/tournaments")
		{
			tournaments.GET("", tournamentHandler.ListTournaments)
			tournaments.GET("/:id", tournamentHandler.GetTournament)
			requireOrganizer := middleware.RequireRole(models.RoleOrganizer, models.RoleAdmin)
			tournaments.POST("", requireAuth, requireOrganizer, tournamentHandler.CreateTournament)
			tournaments.PUT("/:id", requireAuth, requireOrganizer, tournamentHandler.UpdateTournament)
			tournaments.DELETE("/:id", requireAuth, requireOrganizer, tournamentHandler.DeleteTournament)
			tournaments.PATCH("/:id/status", requireAuth, tournamentHandler.UpdateStatus)

			// Registration routes (nested under tournaments)
			tournaments.POST("/:id/register", requireAuth, registrationHandler.Register)
			tournaments.GET("/:id/registrations", requireAuth, registrationHandler.ListRegistrations)
			tournaments.PATCH("/:id/registrations/:registrationId", requireAuth, registrationHandler.UpdateStatus)
			tournaments.DELETE("/:id/registrations/:registrationId", requireAuth, registrationHandler.Delete)

			// Stats
			tournaments.GET("/:id/stats", requireAuth, statsHandler.GetTournamentStats)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
