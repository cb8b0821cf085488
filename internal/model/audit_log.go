package model

import "time"

// AuditLog records who did what: quiz completions, verification flips and
// other staff actions. user_id/quiz_id are nullable because either side of an
// action may be absent.
// swagger:model AuditLog
type AuditLog struct {
	LogID           uint      `gorm:"column:log_id;primaryKey;autoIncrement" json:"log_id"`
	ActionPerformer string    `gorm:"column:action_performer;size:100;not null" json:"action_performer"`
	Action          string    `gorm:"type:text;not null" json:"action"`
	TimeOfAction    time.Time `gorm:"column:time_of_action" json:"time_of_action"`
	UserID          *uint     `gorm:"column:user_id" json:"user_id"`
	QuizID          *uint     `gorm:"column:quiz_id" json:"quiz_id"`
}

func (AuditLog) TableName() string {
	return "logs"
}
