package model

// Question type ids, seeded alongside roles.
const (
	QuestionTypeMultiple uint = 1
	QuestionTypeBoolean  uint = 2
)

// swagger:model QuestionType
type QuestionType struct {
	QuestionTypeID uint   `gorm:"column:question_type_id;primaryKey" json:"question_type_id"`
	Name           string `gorm:"size:50;unique;not null" json:"name"`
}

func (QuestionType) TableName() string {
	return "question_types"
}

// swagger:model Question
type Question struct {
	QuestionID     uint   `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	QuizID         uint   `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	QuestionTypeID uint   `gorm:"column:question_type_id;not null" json:"question_type_id"`
	QuestionText   string `gorm:"column:question_text;type:text;not null" json:"question_text"`
	Position       int    `gorm:"not null;default:0" json:"position"`
	TimeLimit      int    `gorm:"column:time_limit;not null;default:30" json:"time_limit"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model AnswerOption
type AnswerOption struct {
	AnswerID   uint   `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	QuestionID uint   `gorm:"column:question_id;not null;index" json:"question_id"`
	AnswerText string `gorm:"column:answer_text;type:text;not null" json:"answer_text"`
	IsCorrect  bool   `gorm:"column:is_correct;not null;default:false" json:"is_correct"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
