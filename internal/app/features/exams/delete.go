// internal/app/features/exams/delete.go
package exams

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	examstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/exams"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /exams/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad exam id", "Không tìm thấy bài kiểm tra.", "/exams")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Exams.GetByID(ctx, oid)
	switch {
	case errors.Is(err, examstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "exam not found", "Không tìm thấy bài kiểm tra.", "/exams")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load exam failed", err, "Không thể tải bài kiểm tra.", "/exams")
		return
	}

	templates.Render(w, r, "exam_delete", deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Xóa bài kiểm tra", "/exams/"+idHex),
		ID:     e.ID.Hex(),
		Title:  e.Title,
	})
}

// HandleDelete handles POST /exams/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad exam id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Exams.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete exam failed", zap.Error(err), zap.String("exam_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("exam delete: no document found (idempotent)", zap.String("exam_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/exams"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
