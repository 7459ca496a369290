package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/logout"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/auth"
)

func newTestHandler(t *testing.T) (*logout.Handler, *auth.SessionManager) {
	t.Helper()
	logger := zap.NewNop()
	sessionMgr := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, logger)
	return logout.NewHandler(sessionMgr, logger), sessionMgr
}

func TestServeLogout_RedirectsToHome(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	location := rec.Header().Get("Location")
	if location != "/" {
		t.Errorf("Location: got %q, want %q", location, "/")
	}
}

func TestServeLogout_ClearsSessionCookie(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	// Check that the session cookie is being deleted (MaxAge = -1)
	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "test-session" {
			found = true
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge: got %d, want -1 (delete)", c.MaxAge)
			}
			break
		}
	}
	if !found {
		t.Error("expected session cookie to be set for deletion")
	}
}

func TestServeLogout_HTMX_ReturnsHXRedirect(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	// HTMX should get HX-Redirect header
	hxRedirect := rec.Header().Get("HX-Redirect")
	if hxRedirect != "/" {
		t.Errorf("HX-Redirect: got %q, want %q", hxRedirect, "/")
	}

	// Status should be 200 for HTMX
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d for HTMX, got %d", http.StatusOK, rec.Code)
	}
}

func TestServeLogout_WithExistingSession(t *testing.T) {
	handler, sessionMgr := newTestHandler(t)

	// First, establish a signed-in session.
	req1 := httptest.NewRequest("GET", "/setup", nil)
	rec1 := httptest.NewRecorder()

	err := sessionMgr.SignIn(rec1, req1, auth.SessionUser{
		ID:    "test-user-id",
		Name:  "Nguyễn Văn Quản",
		Email: "admin@etutor.vn",
		Role:  "admin",
	})
	if err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	// Now make the logout request with the session cookie.
	req2 := httptest.NewRequest("GET", "/logout", nil)
	for _, c := range rec1.Result().Cookies() {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()

	handler.ServeLogout(rec2, req2)

	if rec2.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec2.Code)
	}

	// Verify the session cookie is being deleted
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "test-session" {
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge after logout: got %d, want -1", c.MaxAge)
			}
		}
	}
}
