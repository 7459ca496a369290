package classes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/classes"
	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) (*classes.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	handler := classes.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleDelete_RemovesClass(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fixtures.CreateClass(ctx, "Toán 9")

	req := httptest.NewRequest("POST", "/classes/"+cl.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/classes" {
		t.Errorf("Location: got %q, want %q", loc, "/classes")
	}

	store := classstore.New(fixtures.DB())
	if _, err := store.GetByID(ctx, cl.ID); err != classstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/classes/not-a-hex-id/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "not-a-hex-id")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleDelete_MissingClassIsIdempotent(t *testing.T) {
	handler, _ := newTestHandler(t)

	id := "64b000000000000000000001"
	req := httptest.NewRequest("POST", "/classes/"+id+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", id)
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
}

func TestHandleDelete_ReturnURL(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fixtures.CreateClass(ctx, "Văn 8")

	req := httptest.NewRequest("POST", "/classes/"+cl.ID.Hex()+"/delete?return=/dashboard", nil)
	req = testutil.WithChiURLParam(req, "id", cl.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location: got %q, want %q", loc, "/dashboard")
	}
}
