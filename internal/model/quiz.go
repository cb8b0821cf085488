package model

import "time"

// Difficulty labels; the scoring point table keys off these.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// swagger:model Difficulty
type Difficulty struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Difficulty string `gorm:"size:50;unique;not null" json:"difficulty"`
}

func (Difficulty) TableName() string {
	return "quiz_difficulties"
}

// PointsPerCorrectAnswer maps a difficulty label to the points one correct
// answer is worth. Unrecognized labels score like Easy.
func PointsPerCorrectAnswer(difficulty string) int {
	switch difficulty {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 20
	case DifficultyHard:
		return 30
	default:
		return 10
	}
}

// swagger:model Quiz
type Quiz struct {
	QuizID         uint      `gorm:"column:quiz_id;primaryKey;autoIncrement" json:"quiz_id"`
	QuizName       string    `gorm:"column:quiz_name;size:255;not null" json:"quiz_name"`
	UserID         uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	CategoryID     uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	DifficultyID   uint      `gorm:"column:difficulty_id;not null" json:"difficulty_id"`
	QuestionCount  int       `gorm:"column:question_count;not null;default:0" json:"question_count"`
	Duration       int       `gorm:"not null;default:15" json:"duration"`
	IsCustomizable bool      `gorm:"column:is_customizable;not null;default:false" json:"is_customizable"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// QuizLike is a toggleable (user, quiz) pair; the composite primary key keeps
// it at most one row per pair.
// swagger:model QuizLike
type QuizLike struct {
	UserID    uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	QuizID    uint      `gorm:"column:quiz_id;primaryKey" json:"quiz_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (QuizLike) TableName() string {
	return "quiz_likes"
}
