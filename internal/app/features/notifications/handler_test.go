package notifications_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/notifications"
	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) (*notifications.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := notifications.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleDelete_RemovesNotification(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n := fixtures.CreateNotification(ctx, "Lịch nghỉ lễ", "notification", "")

	req := httptest.NewRequest("POST", "/notifications/"+n.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", n.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/notifications" {
		t.Errorf("Location: got %q, want %q", loc, "/notifications")
	}

	store := notificationstore.New(fixtures.DB())
	if _, err := store.GetByID(ctx, n.ID); err != notificationstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/notifications/zzz/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "zzz")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
