package lessons_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/lessons"
	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) (*lessons.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	signer := attachments.LocalSigner{BaseURL: "http://localhost:8080/files"}
	handler := lessons.NewHandler(db, signer, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleDelete_RemovesLesson(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fixtures.CreateClass(ctx, "Lý 10")
	l := fixtures.CreateLesson(ctx, cl.ID, "Chương 1: Động học")

	req := httptest.NewRequest("POST", "/lessons/"+l.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", l.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/lessons" {
		t.Errorf("Location: got %q, want %q", loc, "/lessons")
	}

	store := lessonstore.New(fixtures.DB())
	if _, err := store.GetByID(ctx, l.ID); err != lessonstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/lessons/nope/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "nope")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
