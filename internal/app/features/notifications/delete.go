// internal/app/features/notifications/delete.go
package notifications

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	notificationstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/notifications"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /notifications/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad notification id", "Không tìm thấy thông báo.", "/notifications")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := h.Notifications.GetByID(ctx, oid)
	switch {
	case errors.Is(err, notificationstore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "notification not found", "Không tìm thấy thông báo.", "/notifications")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load notification failed", err, "Không thể tải thông báo.", "/notifications")
		return
	}

	templates.Render(w, r, "notification_delete", deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Xóa thông báo", "/notifications"),
		ID:     n.ID.Hex(),
		Title:  n.Title,
	})
}

// HandleDelete handles POST /notifications/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad notification id", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Notifications.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete notification failed", zap.Error(err), zap.String("notification_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("notification delete: no document found (idempotent)", zap.String("notification_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/notifications"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
