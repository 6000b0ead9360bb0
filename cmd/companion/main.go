package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArTrack-Service/artwalk/internal/backend"
	"github.com/ArTrack-Service/artwalk/internal/config"
	"github.com/ArTrack-Service/artwalk/internal/course"
	"github.com/ArTrack-Service/artwalk/internal/geocode"
	"github.com/ArTrack-Service/artwalk/internal/handlers"
	applogger "github.com/ArTrack-Service/artwalk/internal/logger"
	"github.com/ArTrack-Service/artwalk/internal/maps"
	"github.com/ArTrack-Service/artwalk/internal/middleware"
	"github.com/ArTrack-Service/artwalk/internal/route"
	"github.com/ArTrack-Service/artwalk/internal/store"
	"github.com/ArTrack-Service/artwalk/internal/telemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// @title ArtWalk Companion API
// @version 1.0.0
// @description 예술 산책 경로 빌더 컴패니언 API
// @BasePath /
// @schemes https
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	if err := applogger.Init(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer applogger.Sync()

	// Initialize OpenTelemetry Tracer
	ctx := context.Background()
	tracerShutdown, err := telemetry.InitTracer(ctx, "artwalk-companion", cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Error shutting down tracer: %v", err)
		}
	}()

	// Initialize OpenTelemetry Metrics
	meterShutdown, err := telemetry.InitMeter(ctx, "artwalk-companion", cfg.SigNozEndpoint)
	if err != nil {
		log.Printf("Failed to initialize metrics: %v", err)
	}
	defer func() {
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Error shutting down metrics: %v", err)
		}
	}()

	// 로컬 저장소 — 열기에 실패해도 메모리 전용으로 계속 동작한다
	localStore := store.Open(cfg.Store, cfg.ServerEnv)
	go localStore.StartConnectionPoolMetricsCollector(ctx, 30*time.Second)

	// 경로 초안 — 저장소에서 이전 세션의 초안을 복원
	manager := route.NewManager(localStore)
	manager.Load()

	client := backend.NewClient(cfg.BackendAPI)
	geocoder := geocode.New(cfg.NaverAPI, localStore)
	adapter := maps.NewAdapter(geocoder)
	courseService := course.NewService(client, manager)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ArtWalk Companion",
		ErrorHandler: handlers.NewErrorHandler(cfg),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     `{"time":"${time}","status":${status},"latency":"${latency}","ip":"${ip}","method":"${method}","path":"${path}","user_agent":"${ua}","error":"${error}"}` + "\n",
		TimeFormat: "2006-01-02T15:04:05Z07:00",
		TimeZone:   "Asia/Seoul",
	}))
	app.Use(telemetry.New(telemetry.Config{
		ServiceName: "artwalk-companion",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.ShareBaseURL,
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowHeaders:     "Accept, Accept-Encoding, Authorization, Content-Type, Origin, User-Agent, X-Requested-With",
		AllowCredentials: true, // 세션 쿠키 전달
		ExposeHeaders:    "Content-Length, Content-Type",
		MaxAge:           86400,
	}))
	app.Use(middleware.Session())
	app.Use(middleware.PrometheusMiddleware())

	// Setup routes
	setupRoutes(app, cfg, localStore, manager, client, adapter, courseService)

	// Start server
	port := cfg.ServerPort
	if port == "" {
		port = "3000"
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Println("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}()

	log.Printf("Server starting on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(
	app *fiber.App,
	cfg *config.Config,
	localStore *store.Store,
	manager *route.Manager,
	client *backend.Client,
	adapter *maps.Adapter,
	courseService *course.Service,
) {
	// Prometheus metrics
	app.Get("/metrics", middleware.PrometheusHandler())

	// Health check endpoints for k8s probes
	app.Get("/healthz", handlers.HealthCheck)
	app.Get("/liveness", handlers.LivenessCheck)
	app.Get("/readiness", handlers.ReadinessCheck(localStore))

	// Auth routes
	auth := app.Group("/auth")
	handlers.SetupAuthRoutes(auth, client)

	// Artwork catalog (백엔드 프록시 + 필터)
	artwork := app.Group("/artwork")
	handlers.SetupArtworkRoutes(artwork, client)

	// Route draft
	routeGroup := app.Group("/route")
	handlers.SetupRouteRoutes(routeGroup, manager, client, adapter)

	// Courses
	courseGroup := app.Group("/course")
	handlers.SetupCourseRoutes(courseGroup, courseService, client, cfg)
}
