// internal/app/features/lessons/delete.go
package lessons

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	lessonstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/lessons"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /lessons/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad lesson id", "Không tìm thấy buổi học.", "/lessons")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Lessons.GetByID(ctx, oid)
	switch {
	case errors.Is(err, lessonstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "lesson not found", "Không tìm thấy buổi học.", "/lessons")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load lesson failed", err, "Không thể tải buổi học.", "/lessons")
		return
	}

	templates.Render(w, r, "lesson_delete", deleteData{
		BaseVM:  viewdata.NewBaseVM(r, "Xóa buổi học", "/lessons/"+idHex),
		ID:      l.ID.Hex(),
		Content: l.Content,
	})
}

// HandleDelete handles POST /lessons/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad lesson id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Lessons.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete lesson failed", zap.Error(err), zap.String("lesson_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("lesson delete: no document found (idempotent)", zap.String("lesson_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/lessons"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
