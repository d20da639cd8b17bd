package app

import (
	"clat_prep_backend/internal/config"
	"clat_prep_backend/internal/controller"
	"clat_prep_backend/internal/repository"
	"clat_prep_backend/internal/service"
	"clat_prep_backend/pkg/database"
	"clat_prep_backend/pkg/logger"
	"clat_prep_backend/pkg/monitoring"
	"clat_prep_backend/pkg/security"
	"clat_prep_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	attempt      *repository.AttemptRepository
	practice     *repository.PracticeRepository
	caQuiz       *repository.CAQuizRepository
	bookmark     *repository.BookmarkRepository
	gamification *repository.GamificationRepository
}

type services struct {
	content        *service.ContentService
	streak         *service.StreakService
	achievement    *service.AchievementService
	test           *service.TestService
	practice       *service.PracticeService
	currentAffairs *service.CurrentAffairsService
	bookmark       *service.BookmarkService
	analytics      *service.AnalyticsService
	dashboard      *service.DashboardService
}

type controllers struct {
	content        *controller.ContentController
	test           *controller.TestController
	practice       *controller.PracticeController
	currentAffairs *controller.CurrentAffairsController
	bookmark       *controller.BookmarkController
	gamification   *controller.GamificationController
	achievement    *controller.AchievementController
	analytics      *controller.AnalyticsController
	dashboard      *controller.DashboardController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig swaps in a reloaded config and notifies subscribers. Only
// settings read per request (CORS origins, rate limits) take effect without
// a restart.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(store repository.DocumentStore) *repositories {
	return &repositories{
		attempt:      repository.NewAttemptRepository(store),
		practice:     repository.NewPracticeRepository(store),
		caQuiz:       repository.NewCAQuizRepository(store),
		bookmark:     repository.NewBookmarkRepository(store),
		gamification: repository.NewGamificationRepository(store),
	}
}

func (a *App) initServices(repos *repositories, content *service.ContentService) *services {
	s := &services{}

	s.content = content
	s.streak = service.NewStreakService(repos.gamification)
	s.achievement = service.NewAchievementService(repos.gamification)
	s.test = service.NewTestService(content, repos.attempt, s.streak, s.achievement)
	s.practice = service.NewPracticeService(repos.practice, s.streak, s.achievement)
	s.currentAffairs = service.NewCurrentAffairsService(content, repos.caQuiz, s.streak, s.achievement)
	s.bookmark = service.NewBookmarkService(repos.bookmark)
	s.analytics = service.NewAnalyticsService(repos.attempt, repos.practice, repos.caQuiz, content)
	s.dashboard = service.NewDashboardService(s.streak, s.achievement, s.analytics)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		content:        controller.NewContentController(s.content),
		test:           controller.NewTestController(s.test),
		practice:       controller.NewPracticeController(s.practice),
		currentAffairs: controller.NewCurrentAffairsController(s.content, s.currentAffairs),
		bookmark:       controller.NewBookmarkController(s.bookmark),
		gamification:   controller.NewGamificationController(s.streak, s.achievement),
		achievement:    controller.NewAchievementController(s.achievement),
		analytics:      controller.NewAnalyticsController(s.analytics),
		dashboard:      controller.NewDashboardController(s.dashboard),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// initStore builds the document store for the configured backend.
func (a *App) initStore(cfg *config.Config) repository.DocumentStore {
	switch cfg.Store.Backend {
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
		a.Redis = rdb
		return repository.NewRedisDocumentStore(rdb)
	default:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		}
		a.DB = db
		return repository.NewGormDocumentStore(db)
	}
}

// initCatalogSource builds the dataset source for the configured catalog
// location.
func (a *App) initCatalogSource(cfg *config.Config) service.CatalogSource {
	if cfg.Catalog.Type == "minio" {
		source, err := service.NewMinioCatalogSource(&cfg.Catalog)
		if err != nil {
			logger.Log.Fatal("Failed to initialize catalog bucket", zap.Error(err))
		}
		return source
	}
	return &service.LocalCatalogSource{Dir: cfg.Catalog.LocalPath}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	app := &App{
		Config: cfg,
	}

	store := app.initStore(cfg)

	if cfg.MigrateOnly {
		return app
	}

	catalogSource := app.initCatalogSource(cfg)
	content := service.NewContentService(catalogSource)
	content.Load(context.Background())

	repos := app.initRepositories(store)
	services := app.initServices(repos, content)
	app.services = services
	controllers := app.initControllers(services, app.DB, app.Redis)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("clat-prep-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services)

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

	log.Println("Server exiting")
}
