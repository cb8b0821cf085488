package service

import (
	"path/filepath"
	"testing"
	"time"

	"quizify_backend/internal/config"
	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/pkg/database"
	"quizify_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Log = zap.NewNop()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path+"?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	roles := []model.Role{
		{RoleID: model.RoleAdmin, Name: "Admin"},
		{RoleID: model.RoleManagement, Name: "Management"},
		{RoleID: model.RoleVerified, Name: "Verified user"},
		{RoleID: model.RoleRegular, Name: "Regular user"},
	}
	if err := db.Create(&roles).Error; err != nil {
		t.Fatalf("seed roles: %v", err)
	}
	difficulties := []model.Difficulty{
		{ID: 1, Difficulty: model.DifficultyEasy},
		{ID: 2, Difficulty: model.DifficultyMedium},
		{ID: 3, Difficulty: model.DifficultyHard},
	}
	if err := db.Create(&difficulties).Error; err != nil {
		t.Fatalf("seed difficulties: %v", err)
	}
	types := []model.QuestionType{
		{QuestionTypeID: model.QuestionTypeMultiple, Name: "multiple"},
		{QuestionTypeID: model.QuestionTypeBoolean, Name: "boolean"},
	}
	if err := db.Create(&types).Error; err != nil {
		t.Fatalf("seed question types: %v", err)
	}
	if err := db.Create(&model.Category{CategoryName: "General"}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func newRankingService(db *gorm.DB) *RankingService {
	return NewRankingService(repository.NewUserRepository(db), repository.NewQuizRepository(db), repository.NewAttemptRepository(db))
}

func createTestUser(t *testing.T, db *gorm.DB, username string, roleID uint, totalScore int) *model.User {
	t.Helper()
	user := &model.User{
		RoleID:       roleID,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		TotalScore:   totalScore,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// createTestQuiz builds a quiz with questionCount questions, each carrying
// four options whose first one is correct.
func createTestQuiz(t *testing.T, db *gorm.DB, ownerID, difficultyID uint, questionCount int) (*model.Quiz, []model.Question, [][]model.AnswerOption) {
	t.Helper()
	quiz := &model.Quiz{
		QuizName:      "Test Quiz",
		UserID:        ownerID,
		CategoryID:    1,
		DifficultyID:  difficultyID,
		QuestionCount: questionCount,
		Duration:      15,
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}

	questions := make([]model.Question, 0, questionCount)
	options := make([][]model.AnswerOption, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		q := model.Question{
			QuizID:         quiz.QuizID,
			QuestionTypeID: model.QuestionTypeMultiple,
			QuestionText:   "question",
			Position:       i + 1,
			TimeLimit:      30,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("create question: %v", err)
		}
		opts := make([]model.AnswerOption, 4)
		for j := 0; j < 4; j++ {
			opts[j] = model.AnswerOption{
				QuestionID: q.QuestionID,
				AnswerText: "option",
				IsCorrect:  j == 0,
			}
		}
		if err := db.Create(&opts).Error; err != nil {
			t.Fatalf("create options: %v", err)
		}
		questions = append(questions, q)
		options = append(options, opts)
	}
	return quiz, questions, options
}
