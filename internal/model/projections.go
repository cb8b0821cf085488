package model

import "time"

// Read-side projections scanned from joined queries. These never map to
// tables of their own.

// UserWithRole is the admin listing row.
type UserWithRole struct {
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Verified   bool   `json:"verified"`
	Rank       int    `json:"rank"`
	TotalScore int    `json:"total_score"`
	RoleID     uint   `json:"role_id"`
	RoleName   string `json:"role_name"`
}

// QuizListing is the browse row shown on the home page.
type QuizListing struct {
	QuizID         uint      `json:"quiz_id"`
	QuizName       string    `json:"quiz_name"`
	QuestionCount  int       `json:"question_count"`
	Duration       int       `json:"duration"`
	IsCustomizable bool      `json:"is_customizable"`
	CreatedAt      time.Time `json:"created_at"`
	CategoryName   string    `json:"category_name"`
	Difficulty     string    `json:"difficulty"`
	Creator        string    `json:"creator"`
	Likes          int       `json:"likes"`
	UserHasLiked   bool      `json:"user_has_liked"`
}

// QuizQuestionView is one playable question with its options.
type QuizQuestionView struct {
	QuestionID   uint            `json:"question_id"`
	QuestionText string          `json:"question_text"`
	TimeLimit    int             `json:"time_limit"`
	Type         string          `json:"type"`
	Answers      []AnswerOptView `json:"answers"`
}

type AnswerOptView struct {
	AnswerID   uint   `json:"answer_id"`
	AnswerText string `json:"answer_text"`
	IsCorrect  bool   `json:"is_correct"`
}

// LeaderboardEntry is one row of the global or per-quiz board.
type LeaderboardEntry struct {
	Username   string `json:"username"`
	TotalScore int    `json:"total_score"`
	Rank       int    `json:"rank"`
}

// PersonalStat is one row of a user's attempt history.
type PersonalStat struct {
	QuizName       string    `json:"quiz_name"`
	YourScore      int       `json:"your_score"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	CategoryName   string    `json:"category_name"`
	FinishedAt     time.Time `json:"finished_at"`
}

// DifficultyStat is one bucket of the difficulty histogram.
type DifficultyStat struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SuggestionView joins submitter and reviewer usernames onto a suggestion.
type SuggestionView struct {
	Suggestion
	Username         string  `json:"username"`
	ReviewerUsername *string `json:"reviewer_username"`
}
