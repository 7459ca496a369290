// internal/app/features/homeworks/delete.go
package homeworks

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	homeworkstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/homeworks"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /homeworks/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad homework id", "Không tìm thấy bài tập.", "/homeworks")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hw, err := h.Homeworks.GetByID(ctx, oid)
	switch {
	case errors.Is(err, homeworkstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "homework not found", "Không tìm thấy bài tập.", "/homeworks")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load homework failed", err, "Không thể tải bài tập.", "/homeworks")
		return
	}

	templates.Render(w, r, "homework_delete", deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Xóa bài tập", "/homeworks/"+idHex),
		ID:     hw.ID.Hex(),
		Title:  hw.Title,
	})
}

// HandleDelete handles POST /homeworks/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad homework id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Homeworks.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete homework failed", zap.Error(err), zap.String("homework_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("homework delete: no document found (idempotent)", zap.String("homework_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/homeworks"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
