package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizify_backend/internal/config"
	"quizify_backend/internal/controller"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/service"
	"quizify_backend/pkg/configwatcher"
	"quizify_backend/pkg/database"
	"quizify_backend/pkg/logger"
	"quizify_backend/pkg/monitoring"
	"quizify_backend/pkg/security"
	"quizify_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user       *repository.UserRepository
	category   *repository.CategoryRepository
	difficulty *repository.DifficultyRepository
	quiz       *repository.QuizRepository
	question   *repository.QuestionRepository
	attempt    *repository.AttemptRepository
	like       *repository.LikeRepository
	suggestion *repository.SuggestionRepository
	auditLog   *repository.LogRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	ranking    *service.RankingService
	scoring    *service.ScoringService
	quiz       *service.QuizService
	question   *service.QuestionService
	category   *service.CategoryService
	suggestion *service.SuggestionService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	quiz       *controller.QuizController
	question   *controller.QuestionController
	category   *controller.CategoryController
	suggestion *controller.SuggestionController
	upload     *controller.UploadController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		category:   repository.NewCategoryRepository(db),
		difficulty: repository.NewDifficultyRepository(db),
		quiz:       repository.NewQuizRepository(db),
		question:   repository.NewQuestionRepository(db),
		attempt:    repository.NewAttemptRepository(db),
		like:       repository.NewLikeRepository(db),
		suggestion: repository.NewSuggestionRepository(db),
		auditLog:   repository.NewLogRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.ranking = service.NewRankingService(repos.user, repos.quiz, repos.attempt)
	s.auth = service.NewAuthService(cfg, repos.user, s.ranking)
	s.user = service.NewUserService(repos.user, repos.auditLog, s.ranking)
	s.scoring = service.NewScoringService(db, s.ranking)
	s.quiz = service.NewQuizService(repos.quiz, repos.user, repos.difficulty, repos.category, repos.like)
	s.question = service.NewQuestionService(repos.question)
	s.category = service.NewCategoryService(repos.category)
	s.suggestion = service.NewSuggestionService(repos.suggestion)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.user),
		user:       controller.NewUserController(s.user, s.ranking),
		quiz:       controller.NewQuizController(s.quiz, s.scoring, s.ranking, s.user),
		question:   controller.NewQuestionController(s.question),
		category:   controller.NewCategoryController(s.category),
		suggestion: controller.NewSuggestionController(s.suggestion),
		upload:     controller.NewUploadController(s.storage),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
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

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db)

	// Ranks may be stale after a crashed run; one pass at boot repairs them.
	services.ranking.RecomputeRanksAsyncSafe()

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("quizify-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(updated *config.Config) {
		logger.Log.Info("Configuration reloaded",
			zap.Strings("cors_origins", updated.CORS.AllowedOrigins))
		app.Config.CORS = updated.CORS
		app.Config.RateLimit = updated.RateLimit
	})

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
