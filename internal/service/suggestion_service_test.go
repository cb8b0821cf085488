package service

import (
	"errors"
	"testing"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"
)

func TestSuggestionStatusStampsReviewer(t *testing.T) {
	db := newTestDB(t)
	svc := NewSuggestionService(repository.NewSuggestionRepository(db))
	author := createTestUser(t, db, "author", model.RoleRegular, 0)
	reviewer := createTestUser(t, db, "reviewer", model.RoleManagement, 0)

	suggestion, err := svc.Submit(author.UserID, "More categories", "Please add a music category")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if suggestion.Status != model.SuggestionPending {
		t.Fatalf("status = %q, want pending", suggestion.Status)
	}

	approved, err := svc.SetStatus(suggestion.SuggestionID, model.SuggestionApproved, reviewer.UserID)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if approved.ReviewerID == nil || *approved.ReviewerID != reviewer.UserID {
		t.Errorf("reviewer_id = %v, want %d", approved.ReviewerID, reviewer.UserID)
	}
	if approved.ReviewedAt == nil {
		t.Error("reviewed_at not stamped")
	}

	// Resetting to pending clears the review stamp.
	reset, err := svc.SetStatus(suggestion.SuggestionID, model.SuggestionPending, reviewer.UserID)
	if err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}
	if reset.ReviewerID != nil || reset.ReviewedAt != nil {
		t.Errorf("review stamp not cleared: reviewer=%v reviewed_at=%v", reset.ReviewerID, reset.ReviewedAt)
	}

	if _, err := svc.SetStatus(999, model.SuggestionApproved, reviewer.UserID); !errors.Is(err, util.ErrSuggestionNotFound) {
		t.Fatalf("err = %v, want ErrSuggestionNotFound", err)
	}
}

func TestSuggestionListJoinsUsernames(t *testing.T) {
	db := newTestDB(t)
	svc := NewSuggestionService(repository.NewSuggestionRepository(db))
	author := createTestUser(t, db, "author", model.RoleRegular, 0)
	reviewer := createTestUser(t, db, "reviewer", model.RoleAdmin, 0)

	s1, _ := svc.Submit(author.UserID, "First", "first idea")
	if _, err := svc.Submit(author.UserID, "Second", "second idea"); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.SetStatus(s1.SuggestionID, model.SuggestionRejected, reviewer.UserID); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	views, total, err := svc.List(1, 10, "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	for _, v := range views {
		if v.Username != "author" {
			t.Errorf("submitter = %q, want author", v.Username)
		}
		if v.Status == model.SuggestionRejected {
			if v.ReviewerUsername == nil || *v.ReviewerUsername != "reviewer" {
				t.Errorf("reviewer_username = %v, want reviewer", v.ReviewerUsername)
			}
		}
	}

	rejected, total, err := svc.List(1, 10, model.SuggestionRejected, 0)
	if err != nil {
		t.Fatalf("filtered List failed: %v", err)
	}
	if total != 1 || rejected[0].Title != "First" {
		t.Errorf("rejected filter = %+v (total %d), want only First", rejected, total)
	}
}
