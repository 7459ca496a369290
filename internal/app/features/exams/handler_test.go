package exams_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/exams"
	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) (*exams.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	signer := attachments.LocalSigner{BaseURL: "http://localhost:8080/files"}
	handler := exams.NewHandler(db, signer, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleDelete_RemovesExam(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fixtures.CreateClass(ctx, "Hóa 11")
	e := fixtures.CreateExam(ctx, cl.ID, "Kiểm tra giữa kỳ", time.Now().Add(48*time.Hour))

	req := httptest.NewRequest("POST", "/exams/"+e.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", e.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/exams" {
		t.Errorf("Location: got %q, want %q", loc, "/exams")
	}

	store := examstore.New(fixtures.DB())
	if _, err := store.GetByID(ctx, e.ID); err != examstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/exams/xyz/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "xyz")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
