package model

import "time"

// QuizAttempt is one submission event. The header row is created with score 0
// before the per-answer rows exist and updated to the final score at the end
// of the submission transaction. Multiple attempts per (user, quiz) are allowed.
// swagger:model QuizAttempt
type QuizAttempt struct {
	AttemptID  uint      `gorm:"column:attempt_id;primaryKey;autoIncrement" json:"attempt_id"`
	UserID     uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	QuizID     uint      `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Score      int       `gorm:"not null;default:0" json:"score"`
	StartedAt  time.Time `gorm:"column:started_at" json:"started_at"`
	FinishedAt time.Time `gorm:"column:finished_at" json:"finished_at"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

// AttemptAnswer records one answer a user gave within an attempt, tagged with
// its individual correctness for per-question analytics.
// swagger:model AttemptAnswer
type AttemptAnswer struct {
	AttemptAnswerID uint `gorm:"column:attempt_answer_id;primaryKey;autoIncrement" json:"attempt_answer_id"`
	AttemptID       uint `gorm:"column:attempt_id;not null;index" json:"attempt_id"`
	QuestionID      uint `gorm:"column:question_id;not null;index" json:"question_id"`
	AnswerID        uint `gorm:"column:answer_id;not null" json:"answer_id"`
	IsCorrect       bool `gorm:"column:is_correct;not null" json:"is_correct"`
	TimeTaken       int  `gorm:"column:time_taken;not null;default:0" json:"time_taken"`
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
