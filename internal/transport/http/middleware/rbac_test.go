package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talento/internal/domain/identity"
)

func withSessionUser(r *http.Request, role string) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKeyUser, SessionUser{AccountID: 1, Username: "admin", Role: role})
	return r.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireRole(identity.RoleAdmin)(next)

	tests := []struct {
		name   string
		role   string
		anon   bool
		status int
	}{
		{name: "anonymous", anon: true, status: http.StatusUnauthorized},
		{name: "wrong role", role: identity.RoleEmployee, status: http.StatusForbidden},
		{name: "allowed", role: identity.RoleAdmin, status: http.StatusNoContent},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if !tc.anon {
				req = withSessionUser(req, tc.role)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("status = %d, want %d", rec.Code, tc.status)
			}
		})
	}
}

func TestRequireAuthenticated(t *testing.T) {
	handler := RequireAuthenticated(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	req = withSessionUser(httptest.NewRequest(http.MethodGet, "/", nil), identity.RoleSupervisor)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
