package repository

import (
	"time"

	"quizify_backend/internal/model"

	"gorm.io/gorm"
)

type LogRepository struct {
	DB *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{DB: db}
}

// Record appends one audit row. Failures are returned but callers generally
// log and continue; the audit trail never blocks the action itself.
func (r *LogRepository) Record(performer, action string, userID, quizID *uint) error {
	return r.DB.Create(&model.AuditLog{
		ActionPerformer: performer,
		Action:          action,
		TimeOfAction:    time.Now(),
		UserID:          userID,
		QuizID:          quizID,
	}).Error
}

func (r *LogRepository) List(page, limit int) ([]model.AuditLog, int64, error) {
	var total int64
	if err := r.DB.Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.AuditLog
	err := r.DB.Order("time_of_action DESC, log_id DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error
	return logs, total, err
}
