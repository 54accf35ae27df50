package routes

import (
	"time"

	"github.com/franlead/franlead-api/internal/config"
	"github.com/franlead/franlead-api/internal/domain/enum"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/internal/presentation/http/handler"
	"github.com/franlead/franlead-api/internal/presentation/http/middleware"
	"github.com/franlead/franlead-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth          *handler.AuthHandler
	Lead          *handler.LeadHandler
	Pipeline      *handler.PipelineHandler
	Task          *handler.TaskHandler
	Communication *handler.CommunicationHandler
	Franchise     *handler.FranchiseHandler
	Email         *handler.EmailHandler
	User          *handler.UserHandler
	Dashboard     *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Any mutation below this gate requires at least the admin role; plain
	// users read everything but change nothing.
	canMutate := middleware.RequireMutation()
	superOnly := middleware.RequireRole(enum.RoleSuperAdmin)

	// Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)

	// Leads
	idempotency := middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	leads := protected.Group("/leads")
	{
		leads.GET("", h.Lead.List)
		leads.POST("", canMutate, idempotency, h.Lead.Create)
		leads.POST("/import", canMutate, idempotency, h.Lead.Import)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", canMutate, h.Lead.Update)
		leads.DELETE("/:id", canMutate, h.Lead.Delete)

		// Pipeline
		leads.GET("/:id/status", h.Pipeline.CurrentStatus)
		leads.POST("/:id/status", canMutate, h.Pipeline.ChangeStatus)
		leads.GET("/:id/history", h.Pipeline.History)

		// Tasks scoped to a lead
		leads.GET("/:id/tasks", h.Task.ListByLead)
		leads.POST("/:id/tasks", canMutate, h.Task.CreateForLead)

		// Communications
		leads.GET("/:id/communications", h.Communication.ListByLead)
		leads.POST("/:id/communications", canMutate, h.Communication.Create)

		// Email
		leads.POST("/:id/email", canMutate, h.Email.SendToLead)
	}

	// Pipeline board
	protected.GET("/pipeline", h.Pipeline.Board)

	communications := protected.Group("/communications")
	{
		communications.PUT("/:id", canMutate, h.Communication.Update)
		communications.DELETE("/:id", canMutate, h.Communication.Delete)
	}

	// Tasks
	tasks := protected.Group("/tasks")
	{
		tasks.GET("", h.Task.List)
		tasks.GET("/overdue", h.Task.ListOverdue)
		tasks.POST("", canMutate, h.Task.Create)
		tasks.GET("/:id", h.Task.Get)
		tasks.PUT("/:id", canMutate, h.Task.Update)
		tasks.POST("/:id/complete", canMutate, h.Task.Complete)
		tasks.POST("/:id/reopen", canMutate, h.Task.Reopen)
		tasks.DELETE("/:id", canMutate, h.Task.Delete)
	}

	// Franchises
	franchises := protected.Group("/franchises")
	{
		franchises.GET("", h.Franchise.List)
		franchises.POST("", canMutate, h.Franchise.Create)
		franchises.POST("/import", canMutate, idempotency, h.Franchise.Import)
		franchises.GET("/:id", h.Franchise.Get)
		franchises.PUT("/:id", canMutate, h.Franchise.Update)
		franchises.DELETE("/:id", canMutate, h.Franchise.Delete)
	}

	// Email settings and mass sending
	email := protected.Group("/email")
	{
		email.GET("/settings", canMutate, h.Email.GetSettings)
		email.PUT("/settings", superOnly, h.Email.SaveSettings)
		email.POST("/send", canMutate, h.Email.Send)
		email.POST("/mass-send", canMutate, h.Email.MassSend)
	}

	// User administration (superadmin only)
	users := protected.Group("/users", middleware.RequireUserManagement())
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}
