package main

import (
	"log"
	"time"

	"github.com/franlead/franlead-api/internal/application/service"
	"github.com/franlead/franlead-api/internal/config"
	"github.com/franlead/franlead-api/internal/infrastructure/database"
	"github.com/franlead/franlead-api/internal/infrastructure/repository"
	"github.com/franlead/franlead-api/internal/presentation/http/handler"
	"github.com/franlead/franlead-api/internal/presentation/http/routes"
	"github.com/franlead/franlead-api/pkg/mailer"
	"github.com/franlead/franlead-api/pkg/oauth"
	"github.com/franlead/franlead-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	detailsRepo := repository.NewLeadDetailsRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)
	commRepo := repository.NewCommunicationRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	franchiseRepo := repository.NewFranchiseRepository(db)
	settingsRepo := repository.NewEmailSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Choose the mail transport; development runs with the mock sender
	var sender mailer.Sender
	if cfg.Email.MockSend {
		sender = mailer.NewMockSender(time.Duration(cfg.Email.MockDelayMS) * time.Millisecond)
	} else {
		sender = mailer.NewSMTPSender()
	}

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, settingsRepo, jwtManager, sender, googleOAuthService, cfg.Email.FrontendURL)
	leadService := service.NewLeadService(leadRepo, detailsRepo, historyRepo)
	pipelineService := service.NewPipelineService(leadRepo, historyRepo)
	taskService := service.NewTaskService(taskRepo, leadRepo)
	commService := service.NewCommunicationService(commRepo, leadRepo)
	franchiseService := service.NewFranchiseService(franchiseRepo)
	importService := service.NewImportService(leadRepo, detailsRepo, historyRepo, franchiseRepo)
	emailService := service.NewEmailService(settingsRepo, leadRepo, historyRepo, commRepo, sender)
	userService := service.NewUserService(userRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, taskRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:          handler.NewAuthHandler(authService),
		Lead:          handler.NewLeadHandler(leadService, importService),
		Pipeline:      handler.NewPipelineHandler(pipelineService),
		Task:          handler.NewTaskHandler(taskService),
		Communication: handler.NewCommunicationHandler(commService),
		Franchise:     handler.NewFranchiseHandler(franchiseService, importService),
		Email:         handler.NewEmailHandler(emailService),
		User:          handler.NewUserHandler(userService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
