package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sensai_backend/internal/config"
	"sensai_backend/internal/controller"
	"sensai_backend/internal/repository"
	"sensai_backend/internal/service"
	"sensai_backend/pkg/configwatcher"
	"sensai_backend/pkg/database"
	"sensai_backend/pkg/logger"
	"sensai_backend/pkg/monitoring"
	"sensai_backend/pkg/security"
	"sensai_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *mongo.Database

	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	quiz   *repository.QuizRepository
	resume *repository.ResumeRepository
}

type services struct {
	quiz        *service.QuizService
	resume      *service.ResumeService
	coverLetter *service.CoverLetterService
	insight     *service.InsightService
}

type controllers struct {
	quiz        *controller.QuizController
	resume      *controller.ResumeController
	coverLetter *controller.CoverLetterController
	insight     *controller.InsightController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *mongo.Database) *repositories {
	return &repositories{
		quiz:   repository.NewQuizRepository(db),
		resume: repository.NewResumeRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	return &services{
		quiz:        service.NewQuizService(repos.quiz),
		resume:      service.NewResumeService(repos.resume),
		coverLetter: service.NewCoverLetterService(cfg.AI),
		insight:     service.NewInsightService(),
	}
}

func (a *App) initControllers(s *services, db *mongo.Database) *controllers {
	return &controllers{
		quiz:        controller.NewQuizController(s.quiz),
		resume:      controller.NewResumeController(s.resume),
		coverLetter: controller.NewCoverLetterController(s.coverLetter),
		insight:     controller.NewInsightController(s.insight),
		health:      controller.NewHealthController(db, a.Config),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startConfigWatcher() {
	const configFile = "configs/config.yaml"
	if _, err := os.Stat(configFile); err != nil {
		return
	}

	go configwatcher.WatchConfig(configFile, func(cfg *config.Config) {
		logger.Log.Info("Config reloaded")
		a.Config = cfg
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("sensai-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	app.startConfigWatcher()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	if a.DB != nil {
		if err := a.DB.Client().Disconnect(ctx); err != nil {
			logger.Log.Error("Failed to disconnect database", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
