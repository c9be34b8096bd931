package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Sammy-0y/arbeit-project/internal/config"
	"github.com/Sammy-0y/arbeit-project/internal/handlers"
	"github.com/Sammy-0y/arbeit-project/internal/repositories"
	"github.com/Sammy-0y/arbeit-project/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	interviewRepo := repositories.NewInterviewRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	auditRepo := repositories.NewAuditRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize authorizer
	authorizer, err := services.NewAuthorizer(cfg.Authz.PolicyPath)
	if err != nil {
		log.Fatalf("❌ Failed to load authorization policy: %v", err)
	}
	log.Println("✅ Authorization policy loaded")

	// Initialize outbound event dispatcher
	dispatcher := services.NewDispatcher(
		cfg.Dispatcher.Workers,
		cfg.Dispatcher.QueueSize,
		services.NewAuditSink(auditRepo),
		services.NewNotificationSink(notificationRepo, cfg.Dispatcher.NotifyPerSec, cfg.Dispatcher.NotifyBurst),
	)
	dispatcher.Start(context.Background())
	log.Println("✅ Event dispatcher started successfully")

	// Initialize services
	tokenService := services.NewBookingTokenService(cfg.Booking.TokenSecret, cfg.Booking.FrontendURL)
	schedulerService := services.NewSchedulerService(
		interviewRepo,
		candidateRepo,
		jobRepo,
		authorizer,
		dispatcher,
		tokenService,
	)
	pipelineService := services.NewPipelineService(interviewRepo, authorizer)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(schedulerService)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService)
	publicHandler := handlers.NewPublicHandler(schedulerService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Arbeit Interview Orchestration API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-Id, X-User-Email, X-User-Role, X-Client-Id",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Interview lifecycle
	api.Post("/interviews", interviewHandler.HandleCreate)
	api.Get("/interviews", interviewHandler.HandleList)
	api.Get("/interviews/stats/pipeline", pipelineHandler.HandleStats)
	api.Get("/interviews/:id", interviewHandler.HandleGet)
	api.Post("/interviews/:id/book-slot", interviewHandler.HandleBookSlot)
	api.Post("/interviews/:id/send-invite", interviewHandler.HandleSendInvite)
	api.Post("/interviews/:id/mark-completed", interviewHandler.HandleMarkCompleted)
	api.Post("/interviews/:id/mark-no-show", interviewHandler.HandleMarkNoShow)
	api.Post("/interviews/:id/cancel", interviewHandler.HandleCancel)
	api.Post("/interviews/:id/move-to-next-round", interviewHandler.HandleMoveToNextRound)
	api.Post("/interviews/:id/reject", interviewHandler.HandleReject)
	api.Post("/interviews/:id/initiate-hiring", interviewHandler.HandleInitiateHiring)
	api.Get("/interviews/:id/booking-link", interviewHandler.HandleBookingLink)

	// Candidate views
	api.Get("/candidates/:id/interviews", interviewHandler.HandleCandidateInterviews)
	api.Get("/candidates/:id/interview-history", interviewHandler.HandleCandidateHistory)

	// Notifications
	api.Get("/notifications", notificationHandler.HandleList)
	api.Get("/notifications/unread-count", notificationHandler.HandleUnreadCount)
	api.Post("/notifications/mark-all-read", notificationHandler.HandleMarkAllRead)
	api.Post("/notifications/:id/mark-read", notificationHandler.HandleMarkRead)

	// Public candidate booking, gated by the signed link token
	public := api.Group("/public", limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
	}))
	public.Get("/interviews/:id", publicHandler.HandleGet)
	public.Post("/interviews/:id/book", publicHandler.HandleBook)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		dispatcher.Stop()
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
