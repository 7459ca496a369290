package homeworks_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	uierrors "github.com/huulamthcsyl/e-tutor-web/internal/app/features/errors"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/features/homeworks"
	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/attachments"
	"github.com/huulamthcsyl/e-tutor-web/internal/testutil"
)

func newTestHandler(t *testing.T) (*homeworks.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	signer := attachments.LocalSigner{BaseURL: "http://localhost:8080/files"}
	handler := homeworks.NewHandler(db, signer, uierrors.NewErrorLogger(logger), logger)
	return handler, testutil.NewFixtures(t, db)
}

func TestHandleDelete_RemovesHomework(t *testing.T) {
	handler, fixtures := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cl := fixtures.CreateClass(ctx, "Anh văn 7")
	hw := fixtures.CreateHomework(ctx, cl.ID, "Unit 3 exercises", time.Now().Add(72*time.Hour))

	req := httptest.NewRequest("POST", "/homeworks/"+hw.ID.Hex()+"/delete", nil)
	req = testutil.WithChiURLParam(req, "id", hw.ID.Hex())
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/homeworks" {
		t.Errorf("Location: got %q, want %q", loc, "/homeworks")
	}

	store := homeworkstore.New(fixtures.DB())
	if _, err := store.GetByID(ctx, hw.ID); err != homeworkstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_BadID(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/homeworks/bogus/delete", nil)
	req = testutil.WithChiURLParam(req, "id", "bogus")
	rec := httptest.NewRecorder()

	handler.HandleDelete(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
