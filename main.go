package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flowdesk/config"
	"flowdesk/cron"
	"flowdesk/database"
	eventRepoPkg "flowdesk/database/repository/event"
	meetingRepoPkg "flowdesk/database/repository/meeting"
	projectRepoPkg "flowdesk/database/repository/project"
	taskRepoPkg "flowdesk/database/repository/task"
	timeEntryRepoPkg "flowdesk/database/repository/timeentry"
	userRepoPkg "flowdesk/database/repository/user"
	"flowdesk/handlers"
	"flowdesk/middleware"
	"flowdesk/routes"
	"flowdesk/services/analytics"
	"flowdesk/services/availability"
	"flowdesk/services/billing"
	ai "flowdesk/services/intelligence"
	"flowdesk/services/jobs"
	"flowdesk/services/meeting"
	"flowdesk/services/notification"
	"flowdesk/services/project"
	"flowdesk/services/task"
	"flowdesk/services/timer"
	"flowdesk/services/user"
	"flowdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	taskRepo := taskRepoPkg.NewMongoTaskRepo()
	projectRepo := projectRepoPkg.NewMongoProjectRepo()
	meetingRepo := meetingRepoPkg.NewMongoMeetingRepo()
	timeEntryRepo := timeEntryRepoPkg.NewMongoTimeEntryRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	reminderQueue := jobs.NewReminderQueue()
	defer reminderQueue.Close()

	taskService := &task.DefaultTaskService{
		Repo:      taskRepo,
		Events:    eventRepo,
		Reminders: reminderQueue,
	}

	projectService := &project.DefaultProjectService{
		Repo:  projectRepo,
		Tasks: taskRepo,
	}

	meetingService := &meeting.DefaultMeetingService{
		Repo:         meetingRepo,
		Users:        userService,
		Availability: availability.NewDefaultAvailabilityService(),
	}

	timerService := &timer.DefaultTimerService{
		Cache:   utils.GetTimerCacheClient(),
		Entries: timeEntryRepo,
	}

	geminiClient, err := ai.NewGeminiClient(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiService := &ai.DefaultAIService{
		Gemini:  geminiClient,
		Context: ctxStore,
		Usage:   utils.GetCacheClient(),
		Users:   userService,
		Tasks:   taskRepo,
	}

	analyticsService := analytics.NewDefaultAnalyticsService(eventRepo)

	billingService := &billing.DefaultBillingService{
		Users: userService,
	}

	notificationService, err := notification.NewDefaultNotificationService(userService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitReminderWorker(notificationService)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
		"timer": utils.GetTimerCacheClient(),
		"ai":    utils.GetAIContextCacheClient(),
	}, database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		userService,
		taskService,
		projectService,
		meetingService,
		timerService,
		aiService,
		analyticsService,
		billingService,
	)
	routes.RegisterRoutes(router, handlerBundle, userService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
