package service

import (
	"errors"
	"testing"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"

	"gorm.io/gorm"
)

func newQuizService(db *gorm.DB) *QuizService {
	return NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewUserRepository(db),
		repository.NewDifficultyRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewLikeRepository(db),
	)
}

func quizInput(questionCount int) QuizCreate {
	input := QuizCreate{
		QuizName:     "Capitals",
		CategoryID:   1,
		DifficultyID: 2,
		Duration:     30,
	}
	for i := 0; i < questionCount; i++ {
		input.Questions = append(input.Questions, QuestionInput{
			QuestionText: "capital?",
			Answers: []AnswerInput{
				{AnswerText: "right", IsCorrect: true},
				{AnswerText: "wrong"},
			},
		})
	}
	return input
}

func TestCreateQuizCapsUnverifiedCreators(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	regular := createTestUser(t, db, "regular", model.RoleRegular, 0)

	_, err := svc.Create(regular, quizInput(6))
	if !errors.Is(err, util.ErrQuestionLimit) {
		t.Fatalf("err = %v, want ErrQuestionLimit", err)
	}

	quiz, err := svc.Create(regular, quizInput(5))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if quiz.Duration != regularDurationMins {
		t.Errorf("duration = %d, want fixed %d for unverified creators", quiz.Duration, regularDurationMins)
	}
	if quiz.IsCustomizable {
		t.Error("quiz marked customizable for an unverified regular user")
	}
	if quiz.QuestionCount != 5 {
		t.Errorf("question_count = %d, want 5", quiz.QuestionCount)
	}
}

func TestCreateQuizVerifiedKeepsCustomDuration(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	verified := createTestUser(t, db, "verified", model.RoleVerified, 0)

	quiz, err := svc.Create(verified, quizInput(8))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if quiz.Duration != 30 {
		t.Errorf("duration = %d, want the requested 30", quiz.Duration)
	}
	if !quiz.IsCustomizable {
		t.Error("quiz not marked customizable for a verified user")
	}
}

func TestCreateQuizRequiresOneCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	user := createTestUser(t, db, "creator", model.RoleVerified, 0)

	input := quizInput(1)
	input.Questions[0].Answers = []AnswerInput{
		{AnswerText: "a"},
		{AnswerText: "b"},
	}
	_, err := svc.Create(user, input)
	if !errors.Is(err, util.ErrNoCorrectAnswer) {
		t.Fatalf("err = %v, want ErrNoCorrectAnswer", err)
	}

	// The failed create must leave nothing behind.
	var quizzes int64
	db.Model(&model.Quiz{}).Count(&quizzes)
	if quizzes != 0 {
		t.Errorf("quizzes = %d, want 0", quizzes)
	}
}

func TestCreateQuizBumpsTimesChosen(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	user := createTestUser(t, db, "creator", model.RoleVerified, 0)

	if _, err := svc.Create(user, quizInput(1)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var category model.Category
	db.First(&category, "category_id = ?", 1)
	if category.TimesChosen != 1 {
		t.Errorf("times_chosen = %d, want 1", category.TimesChosen)
	}
}

func TestToggleLikeIsIdempotentPerPair(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	user := createTestUser(t, db, "liker", model.RoleRegular, 0)
	quiz, _, _ := createTestQuiz(t, db, user.UserID, 1, 1)

	liked, likes, err := svc.ToggleLike(quiz.QuizID, user.UserID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !liked || likes != 1 {
		t.Errorf("first toggle = (%t, %d), want (true, 1)", liked, likes)
	}

	liked, likes, err = svc.ToggleLike(quiz.QuizID, user.UserID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if liked || likes != 0 {
		t.Errorf("second toggle = (%t, %d), want (false, 0)", liked, likes)
	}
}

func TestDeleteQuizCascades(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	owner := createTestUser(t, db, "owner", model.RoleRegular, 0)
	quiz, questions, options := createTestQuiz(t, db, owner.UserID, 1, 2)

	scoring := NewScoringService(db, newRankingService(db))
	if _, err := scoring.SubmitQuiz(owner.UserID, owner.Username, quiz.QuizID, []SubmittedAnswer{
		{QuestionID: questions[0].QuestionID, AnswerID: options[0][0].AnswerID},
	}); err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}
	if _, _, err := svc.ToggleLike(quiz.QuizID, owner.UserID); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	claims := &util.Claims{UserID: owner.UserID, RoleID: owner.RoleID, Username: owner.Username}
	if err := svc.Delete(quiz.QuizID, claims); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	tables := map[string]interface{}{
		"questions":       &model.Question{},
		"answer_options":  &model.AnswerOption{},
		"quiz_attempts":   &model.QuizAttempt{},
		"attempt_answers": &model.AttemptAnswer{},
		"quiz_likes":      &model.QuizLike{},
	}
	for name, m := range tables {
		var count int64
		db.Model(m).Count(&count)
		if count != 0 {
			t.Errorf("%s rows after cascade delete = %d, want 0", name, count)
		}
	}
}

func TestDeleteQuizPermission(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	owner := createTestUser(t, db, "owner", model.RoleRegular, 0)
	stranger := createTestUser(t, db, "stranger", model.RoleRegular, 0)
	staff := createTestUser(t, db, "staff", model.RoleManagement, 0)
	quiz, _, _ := createTestQuiz(t, db, owner.UserID, 1, 1)

	err := svc.Delete(quiz.QuizID, &util.Claims{UserID: stranger.UserID, RoleID: stranger.RoleID})
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("stranger delete err = %v, want ErrPermissionDenied", err)
	}

	if err := svc.Delete(quiz.QuizID, &util.Claims{UserID: staff.UserID, RoleID: staff.RoleID}); err != nil {
		t.Fatalf("staff delete failed: %v", err)
	}
}

func TestQuizListingCarriesLikeState(t *testing.T) {
	db := newTestDB(t)
	svc := newQuizService(db)
	owner := createTestUser(t, db, "owner", model.RoleRegular, 0)
	other := createTestUser(t, db, "other", model.RoleRegular, 0)
	quiz, _, _ := createTestQuiz(t, db, owner.UserID, 2, 1)

	if _, _, err := svc.ToggleLike(quiz.QuizID, other.UserID); err != nil {
		t.Fatalf("ToggleLike failed: %v", err)
	}

	listings, total, err := svc.List(1, 10, other.UserID, repository.QuizFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 || len(listings) != 1 {
		t.Fatalf("listing size = %d (total %d), want 1", len(listings), total)
	}
	row := listings[0]
	if row.Likes != 1 || !row.UserHasLiked {
		t.Errorf("likes/user_has_liked = %d/%t, want 1/true", row.Likes, row.UserHasLiked)
	}
	if row.Creator != "owner" || row.Difficulty != model.DifficultyMedium {
		t.Errorf("joined names = %q/%q, want owner/Medium", row.Creator, row.Difficulty)
	}

	// The owner has not liked it.
	listings, _, err = svc.List(1, 10, owner.UserID, repository.QuizFilter{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if listings[0].UserHasLiked {
		t.Error("user_has_liked true for a user who never liked the quiz")
	}
}
