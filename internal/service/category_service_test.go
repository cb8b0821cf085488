package service

import (
	"errors"
	"testing"

	"quizify_backend/internal/model"
	"quizify_backend/internal/repository"
	"quizify_backend/internal/util"
)

func TestCategoryDuplicateIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	if _, err := svc.Create("Science"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, name := range []string{"Science", "science", "SCIENCE"} {
		if _, err := svc.Create(name); !errors.Is(err, util.ErrCategoryExists) {
			t.Errorf("Create(%q) err = %v, want ErrCategoryExists", name, err)
		}
	}
}

func TestCategoryRenameRejectsCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	sport, err := svc.Create("Sport")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create("Music"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Rename(sport.CategoryID, "music"); !errors.Is(err, util.ErrCategoryExists) {
		t.Fatalf("Rename err = %v, want ErrCategoryExists", err)
	}

	// Renaming to itself with different casing is allowed.
	renamed, err := svc.Rename(sport.CategoryID, "SPORT")
	if err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if renamed.CategoryName != "SPORT" {
		t.Errorf("name = %q, want SPORT", renamed.CategoryName)
	}
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db))
	owner := createTestUser(t, db, "owner", model.RoleRegular, 0)

	// The seed category (id 1) backs a quiz.
	createTestQuiz(t, db, owner.UserID, 1, 1)

	if err := svc.Delete(1); !errors.Is(err, util.ErrCategoryInUse) {
		t.Fatalf("Delete err = %v, want ErrCategoryInUse", err)
	}

	empty, err := svc.Create("Empty")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := svc.Delete(empty.CategoryID); err != nil {
		t.Fatalf("Delete of unused category failed: %v", err)
	}

	if err := svc.Delete(999); !errors.Is(err, util.ErrCategoryNotFound) {
		t.Fatalf("Delete(999) err = %v, want ErrCategoryNotFound", err)
	}
}
