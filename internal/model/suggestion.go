package model

import "time"

type SuggestionStatus string

const (
	SuggestionPending  SuggestionStatus = "pending"
	SuggestionApproved SuggestionStatus = "approved"
	SuggestionRejected SuggestionStatus = "rejected"
)

// ValidSuggestionStatus reports whether s is one of the three known states.
func ValidSuggestionStatus(s SuggestionStatus) bool {
	return s == SuggestionPending || s == SuggestionApproved || s == SuggestionRejected
}

// Suggestion is a user-submitted quiz idea. Reviewer fields are set when staff
// approves or rejects it and cleared when the status is reset to pending.
// swagger:model Suggestion
type Suggestion struct {
	SuggestionID uint             `gorm:"column:suggestion_id;primaryKey;autoIncrement" json:"suggestion_id"`
	UserID       uint             `gorm:"column:user_id;not null;index" json:"user_id"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Status       SuggestionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	ReviewerID   *uint            `gorm:"column:reviewer_id" json:"reviewer_id"`
	ReviewedAt   *time.Time       `gorm:"column:reviewed_at" json:"reviewed_at"`
	CreatedAt    time.Time        `json:"created_at"`
}

func (Suggestion) TableName() string {
	return "suggestions"
}
