package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthconnect/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []int
		roleID     int
		wantStatus int
	}{
		{"patient allowed", []int{entity.RoleIDPatient}, entity.RoleIDPatient, http.StatusOK},
		{"doctor denied patient route", []int{entity.RoleIDPatient}, entity.RoleIDDoctor, http.StatusForbidden},
		{"admin denied patient route", []int{entity.RoleIDPatient}, entity.RoleIDAdmin, http.StatusForbidden},
		{"multiple roles", []int{entity.RoleIDPatient, entity.RoleIDDoctor}, entity.RoleIDDoctor, http.StatusOK},
		{"pharmacy denied everywhere", []int{entity.RoleIDPatient, entity.RoleIDDoctor, entity.RoleIDAdmin}, entity.RoleIDPharmacy, http.StatusForbidden},
		{"unknown role denied", []int{entity.RoleIDAdmin}, 99, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			rec := httptest.NewRecorder()
			RequireRole(tt.allowed...)(next).ServeHTTP(rec, requestWithRole(tt.roleID))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if wantCalled := tt.wantStatus == http.StatusOK; called != wantCalled {
				t.Errorf("handler called = %v, want %v", called, wantCalled)
			}
		})
	}
}

func TestRequireRoleWithoutAuthContext(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without an authenticated role")
	})

	rec := httptest.NewRecorder()
	RequireRole(entity.RoleIDAdmin)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
