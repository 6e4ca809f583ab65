package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kidquest_backend/internal/config"
	"kidquest_backend/internal/controller"
	"kidquest_backend/internal/repository"
	"kidquest_backend/internal/service"
	"kidquest_backend/pkg/database"
	"kidquest_backend/pkg/logger"
	"kidquest_backend/pkg/monitoring"
	"kidquest_backend/pkg/security"
	"kidquest_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user         *repository.UserRepository
	childProfile *repository.ChildProfileRepository
	ageGroup     *repository.AgeGroupRepository
	module       *repository.LearningModuleRepository
	game         *repository.GameRepository
	gameLevel    *repository.GameLevelRepository
	task         *repository.TaskRepository
	taskVersion  *repository.TaskVersionRepository
	attempt      *repository.AttemptRepository
	taskAnswer   *repository.TaskAnswerRepository
	badge        *repository.BadgeRepository
	childBadge   *repository.ChildBadgeRepository
	progress     *repository.ProgressRepository
}

type services struct {
	auth        *service.AuthService
	user        *service.UserService
	child       *service.ChildService
	catalog     *service.CatalogService
	game        *service.GameService
	task        *service.TaskService
	progress    *service.ProgressService
	achievement *service.AchievementService
	attempt     *service.AttemptService
	storage     *service.StorageService
}

type controllers struct {
	auth        *controller.AuthController
	user        *controller.UserController
	child       *controller.ChildController
	catalog     *controller.CatalogController
	game        *controller.GameController
	task        *controller.TaskController
	attempt     *controller.AttemptController
	achievement *controller.AchievementController
	health      *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		childProfile: repository.NewChildProfileRepository(db),
		ageGroup:     repository.NewAgeGroupRepository(db),
		module:       repository.NewLearningModuleRepository(db),
		game:         repository.NewGameRepository(db),
		gameLevel:    repository.NewGameLevelRepository(db),
		task:         repository.NewTaskRepository(db),
		taskVersion:  repository.NewTaskVersionRepository(db),
		attempt:      repository.NewAttemptRepository(db),
		taskAnswer:   repository.NewTaskAnswerRepository(db),
		badge:        repository.NewBadgeRepository(db),
		childBadge:   repository.NewChildBadgeRepository(db),
		progress:     repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.child = service.NewChildService(repos.childProfile, repos.ageGroup)
	s.catalog = service.NewCatalogService(repos.ageGroup, repos.module, repos.game, rdb)
	s.game = service.NewGameService(repos.game, repos.gameLevel, repos.module, s.catalog)
	s.task = service.NewTaskService(repos.task, repos.taskVersion, repos.game, repos.gameLevel)
	s.progress = service.NewProgressService(repos.progress, repos.game, repos.gameLevel, repos.attempt)
	s.achievement = service.NewAchievementService(repos.badge, repos.childBadge, repos.attempt, repos.childProfile)
	s.attempt = service.NewAttemptService(
		repos.attempt,
		repos.taskAnswer,
		repos.task,
		repos.taskVersion,
		repos.game,
		repos.gameLevel,
		s.progress,
		s.achievement,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:        controller.NewAuthController(s.auth),
		user:        controller.NewUserController(s.user, s.storage),
		child:       controller.NewChildController(s.child),
		catalog:     controller.NewCatalogController(s.catalog),
		game:        controller.NewGameController(s.game, s.progress, s.child, s.storage),
		task:        controller.NewTaskController(s.task),
		attempt:     controller.NewAttemptController(s.attempt, s.child),
		achievement: controller.NewAchievementController(s.achievement, s.child, s.storage),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.ForceMigrate || cfg.Server.Mode != "release")
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("kidquest-platform", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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
