package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"quizify_backend/internal/config"
	"quizify_backend/internal/middleware"
	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/service"
	"quizify_backend/internal/util"
	"quizify_backend/pkg/database"
	"quizify_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{}
	cfg.JWT.Secret = "controller-test-secret"
	cfg.JWT.ExpireTime = time.Hour

	userRepo := repository.NewUserRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	ranking := service.NewRankingService(userRepo, quizRepo, repository.NewAttemptRepository(db))
	auth := service.NewAuthService(cfg, userRepo, ranking)
	users := service.NewUserService(userRepo, repository.NewLogRepository(db), ranking)
	scoring := service.NewScoringService(db, ranking)
	quizzes := service.NewQuizService(quizRepo, userRepo, repository.NewDifficultyRepository(db), repository.NewCategoryRepository(db), repository.NewLikeRepository(db))
	questions := service.NewQuestionService(repository.NewQuestionRepository(db))
	categories := service.NewCategoryService(repository.NewCategoryRepository(db))
	suggestions := service.NewSuggestionService(repository.NewSuggestionRepository(db))

	authCtl := NewAuthController(auth, users)
	userCtl := NewUserController(users, ranking)
	quizCtl := NewQuizController(quizzes, scoring, ranking, users)
	questionCtl := NewQuestionController(questions)
	categoryCtl := NewCategoryController(categories)
	suggestionCtl := NewSuggestionController(suggestions)

	router := gin.New()
	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authCtl.Register)
	authGroup.POST("", authCtl.Login)
	authGroup.GET("", middleware.TryAuthMiddleware(cfg), authCtl.Whoami)
	authGroup.DELETE("", authCtl.Logout)

	userGroup := api.Group("/users")
	userGroup.GET("/leaderboard", middleware.TryAuthMiddleware(cfg), userCtl.Leaderboard)
	staffUsers := userGroup.Group("")
	staffUsers.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.StaffRoles()...))
	staffUsers.GET("", userCtl.List)
	staffUsers.PUT("/:username", userCtl.Update)
	staffUsers.DELETE("/:username", userCtl.Delete)

	quizGroup := api.Group("/quizzes")
	quizGroup.GET("", middleware.TryAuthMiddleware(cfg), quizCtl.List)
	quizGroup.GET("/difficulties", quizCtl.Difficulties)
	quizGroup.GET("/:id/questions", quizCtl.Questions)
	authorizedQuiz := quizGroup.Group("")
	authorizedQuiz.Use(middleware.AuthMiddleware(cfg))
	authorizedQuiz.POST("", quizCtl.Create)
	authorizedQuiz.POST("/:id/submit", quizCtl.Submit)
	authorizedQuiz.GET("/:id/leaderboard", quizCtl.Leaderboard)
	authorizedQuiz.POST("/:id/like", quizCtl.Like)

	questionGroup := api.Group("/questions")
	questionGroup.Use(middleware.AuthMiddleware(cfg))
	questionGroup.PUT("/:id", questionCtl.Update)
	questionGroup.DELETE("/:id", questionCtl.Delete)

	categoryGroup := api.Group("/categories")
	categoryGroup.GET("", categoryCtl.List)
	staffCategories := categoryGroup.Group("")
	staffCategories.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.StaffRoles()...))
	staffCategories.POST("", categoryCtl.Create)
	staffCategories.DELETE("/:id", categoryCtl.Delete)

	suggestionGroup := api.Group("/suggestions")
	suggestionGroup.Use(middleware.AuthMiddleware(cfg))
	suggestionGroup.POST("", suggestionCtl.Submit)
	staffSuggestions := suggestionGroup.Group("")
	staffSuggestions.Use(middleware.RoleMiddleware(model.StaffRoles()...))
	staffSuggestions.GET("", suggestionCtl.List)
	staffSuggestions.PATCH("/:id/status", suggestionCtl.SetStatus)

	return &testServer{router: router, db: db, cfg: cfg}
}

func (s *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// login authenticates one of the seeded demo accounts.
func (s *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := s.request(t, http.MethodPost, "/api/auth", "", gin.H{
		"username": username,
		"password": password,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: status = %d, body = %s", username, rec.Code, rec.Body.String())
	}
	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Data.Token == "" {
		t.Fatal("login returned an empty token")
	}
	return resp.Data.Token
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Code    int             `json:"code"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("decode data: %v (data %s)", err, string(envelope.Data))
		}
	}
}

func (s *testServer) mustClaims(t *testing.T, token string) *util.Claims {
	t.Helper()
	claims, err := util.ParseJWT(token, s.cfg.JWT.Secret)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	return claims
}
