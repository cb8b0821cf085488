package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestStaffSurfaceRoleEnforcement(t *testing.T) {
	srv := newTestServer(t)
	userToken := srv.login(t, "user", "User123")
	managerToken := srv.login(t, "manager", "Manager123")
	adminToken := srv.login(t, "admin", "Admin123")

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
	}{
		{"list users", http.MethodGet, "/api/users", nil},
		{"create category", http.MethodPost, "/api/categories", gin.H{"category_name": "Nature"}},
		{"list suggestions", http.MethodGet, "/api/suggestions", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := srv.request(t, tc.method, tc.path, "", tc.body); rec.Code != http.StatusUnauthorized {
				t.Errorf("anonymous status = %d, want 401", rec.Code)
			}
			if rec := srv.request(t, tc.method, tc.path, userToken, tc.body); rec.Code != http.StatusForbidden {
				t.Errorf("regular user status = %d, want 403", rec.Code)
			}
		})
	}

	// Management passes staff checks.
	if rec := srv.request(t, http.MethodGet, "/api/users", managerToken, nil); rec.Code != http.StatusOK {
		t.Errorf("manager list users status = %d, want 200", rec.Code)
	}
	// Admin passes every role check.
	if rec := srv.request(t, http.MethodGet, "/api/suggestions", adminToken, nil); rec.Code != http.StatusOK {
		t.Errorf("admin list suggestions status = %d, want 200", rec.Code)
	}
}

func TestDeleteAdminForbidden(t *testing.T) {
	srv := newTestServer(t)
	managerToken := srv.login(t, "manager", "Manager123")

	rec := srv.request(t, http.MethodDelete, "/api/users/admin", managerToken, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}

	rec = srv.request(t, http.MethodDelete, "/api/users/user", managerToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete regular user status = %d, want 200", rec.Code)
	}
}

func TestCategoryLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	adminToken := srv.login(t, "admin", "Admin123")

	rec := srv.request(t, http.MethodPost, "/api/categories", adminToken, gin.H{"category_name": "science"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("case-insensitive duplicate status = %d, want 409 (seeded Science)", rec.Code)
	}

	// Seeded category 2 (Science) backs seeded quizzes.
	rec = srv.request(t, http.MethodDelete, "/api/categories/2", adminToken, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("in-use delete status = %d, want 409", rec.Code)
	}

	rec = srv.request(t, http.MethodPost, "/api/categories", adminToken, gin.H{"category_name": "Ephemeral"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created struct {
		CategoryID uint `json:"category_id"`
	}
	decodeData(t, rec, &created)

	rec = srv.request(t, http.MethodDelete, "/api/categories/7", adminToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200 (category %d)", rec.Code, created.CategoryID)
	}
}

func TestSuggestionFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	userToken := srv.login(t, "user", "User123")
	managerToken := srv.login(t, "manager", "Manager123")

	rec := srv.request(t, http.MethodPost, "/api/suggestions", userToken, gin.H{
		"title":       "Add a music category",
		"description": "There is no place for music quizzes yet.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var created struct {
		SuggestionID uint `json:"suggestion_id"`
	}
	decodeData(t, rec, &created)

	rec = srv.request(t, http.MethodPatch, "/api/suggestions/1/status", managerToken, gin.H{"status": "approved"})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d", rec.Code)
	}
	var approved struct {
		Status     string `json:"status"`
		ReviewerID *uint  `json:"reviewer_id"`
	}
	decodeData(t, rec, &approved)
	if approved.Status != "approved" || approved.ReviewerID == nil {
		t.Errorf("approved = %+v, want approved with reviewer", approved)
	}

	rec = srv.request(t, http.MethodPatch, "/api/suggestions/1/status", managerToken, gin.H{"status": "nonsense"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad status = %d, want 400", rec.Code)
	}
}
