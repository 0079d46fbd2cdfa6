package routes

import (
	"time"

	"flowdesk/handlers"
	"flowdesk/middleware"
	"flowdesk/models"
	"flowdesk/services/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login, and logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.User.RegisterHandler)
		api.POST("/login", hb.User.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("/logout", hb.User.LogoutHandler)
	}
}

// RegisterUserRoutes registers account management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.GET("/me", hb.User.GetMeHandler)
		api.PUT("/me/working-hours", hb.User.UpdateWorkingHoursHandler)
		api.PUT("/me/fcm-token", hb.User.UpdateFCMTokenHandler)
		api.DELETE("/me", hb.User.DeleteAccountHandler)
	}
}

// RegisterTaskRoutes registers task and time-entry endpoints.
func RegisterTaskRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/tasks")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("", hb.Task.CreateTaskHandler)
		api.GET("", hb.Task.ListTasksHandler)
		api.GET("/:id", hb.Task.GetTaskHandler)
		api.PUT("/:id", hb.Task.UpdateTaskHandler)
		api.POST("/:id/complete", hb.Task.CompleteTaskHandler)
		api.DELETE("/:id", hb.Task.DeleteTaskHandler)
		api.GET("/:id/time-entries", hb.Timer.ListTimeEntriesHandler)
	}
}

// RegisterProjectRoutes registers project endpoints.
func RegisterProjectRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/projects")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("", hb.Project.CreateProjectHandler)
		api.GET("", hb.Project.ListProjectsHandler)
		api.GET("/:id", hb.Project.GetProjectHandler)
		api.PUT("/:id", hb.Project.UpdateProjectHandler)
		api.POST("/:id/archive", hb.Project.ArchiveProjectHandler)
		api.DELETE("/:id", hb.Project.DeleteProjectHandler)
	}
}

// RegisterMeetingRoutes registers calendar and availability endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/meetings")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("", hb.Meeting.CreateMeetingHandler)
		api.GET("", hb.Meeting.ListMeetingsHandler)
		api.GET("/:id", hb.Meeting.GetMeetingHandler)
		api.PUT("/:id", hb.Meeting.UpdateMeetingHandler)
		api.DELETE("/:id", hb.Meeting.DeleteMeetingHandler)
	}

	availabilityGroup := r.Group("/api/availability")
	{
		availabilityGroup.Use(middleware.JWTAuthMiddleware(userSvc))
		availabilityGroup.POST("/find", hb.Meeting.FindAvailabilityHandler)
	}
}

// RegisterTimerRoutes registers time-tracking endpoints.
func RegisterTimerRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/timer")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("/start", hb.Timer.StartTimerHandler)
		api.POST("/stop", hb.Timer.StopTimerHandler)
		api.GET("/current", hb.Timer.CurrentTimerHandler)
		api.GET("/entries", hb.Timer.ListMyEntriesHandler)
	}
}

// RegisterAIRoutes registers assistant endpoints. Free-plan quota is enforced
// inside the service; Pro gating applies to chat only.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("/classify", hb.AI.ClassifyTaskHandler)
		api.POST("/chat", hb.AI.ChatHandler)
		api.DELETE("/context", hb.AI.ClearContextHandler)
	}
}

// RegisterAnalyticsRoutes registers reporting endpoints behind the Pro plan.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	api := r.Group("/api/analytics")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.Use(middleware.RequirePlan(userSvc, models.PlanPro))
		api.GET("/usage", hb.Analytics.UsageStatsHandler)
		api.GET("/conflicts", hb.Analytics.ConflictReportHandler)
		api.GET("/dashboard", hb.Analytics.DashboardHandler)
	}
}

// RegisterBillingRoutes registers subscription endpoints. The webhook stays
// outside the auth group; Stripe signs its own requests.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	r.POST("/api/billing/webhook", hb.Billing.StripeWebhookHandler)

	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthMiddleware(userSvc))
		api.POST("/subscribe", hb.Billing.SubscribeHandler)
		api.POST("/cancel", hb.Billing.CancelSubscriptionHandler)
		api.GET("/status", hb.Billing.SubscriptionStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, userSvc user.UserService) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb, userSvc)
	RegisterUserRoutes(r, hb, userSvc)
	RegisterTaskRoutes(r, hb, userSvc)
	RegisterProjectRoutes(r, hb, userSvc)
	RegisterMeetingRoutes(r, hb, userSvc)
	RegisterTimerRoutes(r, hb, userSvc)
	RegisterAIRoutes(r, hb, userSvc)
	RegisterAnalyticsRoutes(r, hb, userSvc)
	RegisterBillingRoutes(r, hb, userSvc)
	RegisterHealthRoute(r)
}
