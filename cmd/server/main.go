package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/portfolio-api/internal/config"
	"github.com/mkobayashi/portfolio-api/internal/database"
	"github.com/mkobayashi/portfolio-api/internal/handlers"
	"github.com/mkobayashi/portfolio-api/internal/middleware"
	"github.com/mkobayashi/portfolio-api/internal/repository"
	"github.com/mkobayashi/portfolio-api/internal/services"
	"github.com/mkobayashi/portfolio-api/internal/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	sugar := logger.Sugar()
	defer func() {
		_ = logger.Sync()
	}()

	// Serving traffic without a signing secret would mean issuing
	// unverifiable tokens; refuse to start instead.
	if cfg.JWTSecret == "" {
		sugar.Fatal("JWT_SECRET is not defined")
	}

	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		sugar.Fatalw("Failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		sugar.Fatalw("Failed to run migrations", "error", err)
	}

	db := database.GetDB()

	// File storage
	var files storage.Storage
	switch cfg.StorageDriver {
	case "s3":
		files, err = storage.NewS3Storage(context.Background(), cfg.S3Bucket)
		if err != nil {
			sugar.Fatalw("Failed to initialize S3 storage", "error", err)
		}
	case "local":
		files, err = storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			sugar.Fatalw("Failed to initialize local storage", "error", err)
		}
	default:
		sugar.Fatalw("Unsupported storage driver", "driver", cfg.StorageDriver)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	contactRepo := repository.NewContactRepository(db)

	// Notification sender (optional)
	var notifier services.Notifier
	if cfg.EmailHost != "" && cfg.EmailUser != "" {
		notifier = services.NewMailer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass, cfg.EmailTo)
	} else {
		sugar.Info("No mail transport configured; contact notifications disabled")
	}

	// Services
	authService := services.NewAuthService(userRepo, cfg.BcryptCost)
	tokenService := services.NewTokenService(cfg.JWTSecret)
	projectService := services.NewProjectService(projectRepo, files, sugar)
	experienceService := services.NewExperienceService(experienceRepo)
	skillService := services.NewSkillService(skillRepo)
	contactService := services.NewContactService(contactRepo, notifier, sugar)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService)
	projectHandler := handlers.NewProjectHandler(projectService)
	experienceHandler := handlers.NewExperienceHandler(experienceService)
	skillHandler := handlers.NewSkillHandler(skillService)
	contactHandler := handlers.NewContactHandler(contactService)

	r := gin.Default()

	// Uploaded images are served statically when stored locally.
	if cfg.StorageDriver == "local" {
		r.Static("/uploads", cfg.UploadDir)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Portfolio API is running",
		})
	})

	protect := middleware.RequireAuth(tokenService, userRepo)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Project routes (public reads, protected writes)
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("", protect, projectHandler.CreateProject)
			projects.PUT("/:id", protect, projectHandler.UpdateProject)
			projects.DELETE("/:id", protect, projectHandler.DeleteProject)
		}

		// Experience routes
		experience := api.Group("/experience")
		{
			experience.GET("", experienceHandler.ListExperiences)
			experience.POST("", protect, experienceHandler.CreateExperience)
			experience.PUT("/:id", protect, experienceHandler.UpdateExperience)
			experience.DELETE("/:id", protect, experienceHandler.DeleteExperience)
		}

		// Skill routes
		skills := api.Group("/skills")
		{
			skills.GET("", skillHandler.ListSkills)
			skills.POST("", protect, skillHandler.CreateSkill)
			skills.PUT("/:id", protect, skillHandler.UpdateSkill)
			skills.DELETE("/:id", protect, skillHandler.DeleteSkill)
		}

		// Contact route (public)
		api.POST("/contact", contactHandler.SubmitContact)
	}

	// Start server
	sugar.Infow("Server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("Failed to start server", "error", err)
	}
}
