package app

import (
	"context"
	"edms_training_backend/internal/config"
	"edms_training_backend/internal/controller"
	"edms_training_backend/internal/repository"
	"edms_training_backend/internal/service"
	"edms_training_backend/pkg/database"
	"edms_training_backend/pkg/logger"
	"edms_training_backend/pkg/monitoring"
	"edms_training_backend/pkg/security"
	"edms_training_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	corsOrigins    atomic.Value // []string，配置热更新时整体替换
	tracerProvider *sdktrace.TracerProvider
}

type repositories struct {
	user     *repository.UserRepository
	training *repository.TrainingRepository
	attempt  *repository.AttemptRepository
}

type services struct {
	auth     *service.AuthService
	user     *service.UserService
	training *service.TrainingService
	attempt  *service.AttemptService
	backup   *service.BackupService
	storage  *service.StorageService
}

type controllers struct {
	auth     *controller.AuthController
	data     *controller.DataController
	user     *controller.UserController
	training *controller.TrainingController
	attempt  *controller.AttemptController
	backup   *controller.BackupController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		training: repository.NewTrainingRepository(db),
		attempt:  repository.NewAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:     service.NewAuthService(repos.user, service.PlaintextVerifier{}),
		user:     service.NewUserService(repos.user, db),
		training: service.NewTrainingService(repos.training, db),
		attempt:  service.NewAttemptService(repos.attempt),
		backup:   service.NewBackupService(repos.user, repos.training, repos.attempt, db),
		storage:  storage,
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		data:     controller.NewDataController(s.user, s.training, s.attempt),
		user:     controller.NewUserController(s.user),
		training: controller.NewTrainingController(s.training, s.storage),
		attempt:  controller.NewAttemptController(s.attempt),
		backup:   controller.NewBackupController(s.backup),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) allowedOrigins() []string {
	origins, _ := a.corsOrigins.Load().([]string)
	return origins
}

// ApplyConfig 配置热更新回调，目前只刷新 CORS 白名单
func (a *App) ApplyConfig(cfg *config.Config) {
	a.corsOrigins.Store(cfg.CORS.AllowedOrigins)
	logger.Log.Info("Config reloaded", zap.Strings("allowed_origins", cfg.CORS.AllowedOrigins))
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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

// NewRouter 只组装路由与处理器，测试时可以挂在任意 *gorm.DB 上
func NewRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	a := &App{Config: cfg, DB: db}
	a.corsOrigins.Store(cfg.CORS.AllowedOrigins)

	repos := a.initRepositories(db)
	services, err := a.initServices(repos, cfg, db)
	if err != nil {
		return nil, err
	}
	controllers := a.initControllers(services, db)

	router := gin.New()
	a.Router = router
	a.registerRoutes(router, controllers)
	return router, nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}
	app.corsOrigins.Store(cfg.CORS.AllowedOrigins)

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("edms-training", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" || cfg.Storage.Type == "" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
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

	log.Println("Server exiting")
}
