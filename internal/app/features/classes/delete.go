// internal/app/features/classes/delete.go
package classes

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	classstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/classes"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /classes/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad class id", "Không tìm thấy lớp học.", "/classes")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cl, err := h.Classes.GetByID(ctx, oid)
	switch {
	case errors.Is(err, classstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "class not found", "Không tìm thấy lớp học.", "/classes")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load class failed", err, "Không thể tải lớp học.", "/classes")
		return
	}

	templates.Render(w, r, "class_delete", deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Xóa lớp học", "/classes/"+idHex),
		ID:     cl.ID.Hex(),
		Name:   cl.Name,
	})
}

// HandleDelete handles POST /classes/{id}/delete and redirects back to the
// list (or to a caller-provided return URL if present).
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad class id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Classes.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete class failed", zap.Error(err), zap.String("class_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("class delete: no document found (idempotent)", zap.String("class_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/classes"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
