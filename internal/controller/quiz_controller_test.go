package controller

import (
	"fmt"
	"net/http"
	"testing"

	"quizify_backend/internal/model"

	"github.com/gin-gonic/gin"
)

// correctAnswers maps every question of one quiz to its correct option id.
func correctAnswers(t *testing.T, srv *testServer, quizID uint) []gin.H {
	t.Helper()
	var questions []model.Question
	if err := srv.db.Where("quiz_id = ?", quizID).Find(&questions).Error; err != nil {
		t.Fatalf("load questions: %v", err)
	}
	answers := make([]gin.H, 0, len(questions))
	for _, q := range questions {
		var opt model.AnswerOption
		if err := srv.db.Where("question_id = ? AND is_correct = ?", q.QuestionID, true).First(&opt).Error; err != nil {
			t.Fatalf("load correct option: %v", err)
		}
		answers = append(answers, gin.H{"question_id": q.QuestionID, "answer_id": opt.AnswerID})
	}
	return answers
}

func TestSubmitQuizEndToEnd(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "user", "User123")

	// Seeded quiz 2 ("Solar System Secrets") is Medium, 5 questions.
	answers := correctAnswers(t, srv, 2)
	rec := srv.request(t, http.MethodPost, "/api/quizzes/2/submit", token, gin.H{"answers": answers})
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var result struct {
		Score     int `json:"score"`
		Correct   int `json:"correct_answers"`
		Incorrect int `json:"incorrect_answers"`
		Board     struct {
			Top []struct {
				Username string `json:"username"`
				Rank     int    `json:"rank"`
			} `json:"leaderboard"`
		} `json:"leaderboard"`
	}
	decodeData(t, rec, &result)
	if result.Score != 100 {
		t.Errorf("score = %d, want 100 (5 correct on Medium)", result.Score)
	}
	if result.Correct != 5 || result.Incorrect != 0 {
		t.Errorf("correct/incorrect = %d/%d, want 5/0", result.Correct, result.Incorrect)
	}
	if len(result.Board.Top) == 0 || result.Board.Top[0].Username != "user" {
		t.Errorf("leaderboard top = %+v, want user first", result.Board.Top)
	}
}

func TestSubmitQuizForeignAnswerRejected(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "user", "User123")

	// An answer option belonging to quiz 1 submitted against quiz 2.
	foreign := correctAnswers(t, srv, 1)[0]
	rec := srv.request(t, http.MethodPost, "/api/quizzes/2/submit", token, gin.H{"answers": []gin.H{foreign}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitQuizRequiresAuth(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.request(t, http.MethodPost, "/api/quizzes/1/submit", "", gin.H{"answers": []gin.H{}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestQuizQuestionsPublic(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/api/quizzes/1/questions", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var questions []struct {
		QuestionText string `json:"question_text"`
		Answers      []struct {
			AnswerText string `json:"answer_text"`
		} `json:"answers"`
	}
	decodeData(t, rec, &questions)
	if len(questions) != 5 {
		t.Fatalf("questions = %d, want 5", len(questions))
	}
	if len(questions[0].Answers) != 4 {
		t.Errorf("options = %d, want 4", len(questions[0].Answers))
	}

	rec = srv.request(t, http.MethodGet, "/api/quizzes/999/questions", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown quiz status = %d, want 404", rec.Code)
	}
}

func TestQuizLeaderboardNoAttemptsIs204(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "user", "User123")

	rec := srv.request(t, http.MethodGet, "/api/quizzes/1/leaderboard", token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	// After one attempt the board materializes.
	answers := correctAnswers(t, srv, 1)
	if rec := srv.request(t, http.MethodPost, "/api/quizzes/1/submit", token, gin.H{"answers": answers}); rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d", rec.Code)
	}
	rec = srv.request(t, http.MethodGet, "/api/quizzes/1/leaderboard", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status after attempt = %d, want 200", rec.Code)
	}
	var board struct {
		Top []struct {
			Username string `json:"username"`
		} `json:"leaderboard"`
		CurrentUser *struct {
			Username string `json:"username"`
		} `json:"currentUser"`
	}
	decodeData(t, rec, &board)
	if len(board.Top) != 1 || board.Top[0].Username != "user" {
		t.Errorf("board = %+v, want only user", board.Top)
	}
	if board.CurrentUser == nil || board.CurrentUser.Username != "user" {
		t.Errorf("currentUser = %+v, want user", board.CurrentUser)
	}
}

func TestCreateQuizCapsAndLike(t *testing.T) {
	srv := newTestServer(t)
	token := srv.login(t, "user", "User123")

	questions := make([]gin.H, 6)
	for i := range questions {
		questions[i] = gin.H{
			"question_text": fmt.Sprintf("q%d", i),
			"answers": []gin.H{
				{"answer_text": "yes", "is_correct": true},
				{"answer_text": "no"},
			},
		}
	}
	rec := srv.request(t, http.MethodPost, "/api/quizzes", token, gin.H{
		"quiz_name":     "Too Big",
		"category_id":   1,
		"difficulty_id": 1,
		"questions":     questions,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("6-question create status = %d, want 400", rec.Code)
	}

	rec = srv.request(t, http.MethodPost, "/api/quizzes", token, gin.H{
		"quiz_name":     "Just Right",
		"category_id":   1,
		"difficulty_id": 1,
		"questions":     questions[:5],
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created struct {
		QuizID uint `json:"quiz_id"`
	}
	decodeData(t, rec, &created)

	likePath := fmt.Sprintf("/api/quizzes/%d/like", created.QuizID)
	rec = srv.request(t, http.MethodPost, likePath, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("like status = %d", rec.Code)
	}
	var likeState struct {
		Liked bool  `json:"liked"`
		Likes int64 `json:"likes"`
	}
	decodeData(t, rec, &likeState)
	if !likeState.Liked || likeState.Likes != 1 {
		t.Errorf("like state = %+v, want liked with 1 total", likeState)
	}
}

func TestGlobalLeaderboardPublic(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.request(t, http.MethodGet, "/api/users/leaderboard", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var board struct {
		Top []struct {
			Username string `json:"username"`
		} `json:"leaderboard"`
		CurrentUser *struct{} `json:"currentUser"`
	}
	decodeData(t, rec, &board)
	if len(board.Top) != 4 {
		t.Errorf("top = %d entries, want the 4 seeded users", len(board.Top))
	}
	if board.CurrentUser != nil {
		t.Error("currentUser set for an anonymous caller")
	}
}
