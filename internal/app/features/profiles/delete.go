// internal/app/features/profiles/delete.go
package profiles

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/authz"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
)

// ServeDeleteConfirm handles GET /profiles/{id}/delete.
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "bad profile id", "Không tìm thấy người dùng.", "/profiles")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Profiles.GetByID(ctx, oid)
	switch {
	case errors.Is(err, profilestore.ErrNotFound):
		h.ErrLog.LogNotFound(w, r, "profile not found", "Không tìm thấy người dùng.", "/profiles")
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "load profile failed", err, "Không thể tải người dùng.", "/profiles")
		return
	}

	templates.Render(w, r, "profile_delete", deleteData{
		BaseVM: viewdata.NewBaseVM(r, "Xóa người dùng", "/profiles/"+idHex),
		ID:     p.ID.Hex(),
		Name:   p.Name,
	})
}

// HandleDelete handles POST /profiles/{id}/delete. Admins cannot delete
// their own account while signed in with it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		http.Error(w, "bad profile id", http.StatusBadRequest)
		return
	}

	if _, _, userID, ok := authz.UserCtx(r); ok && userID == oid {
		http.Error(w, "cannot delete your own account", http.StatusConflict)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Profiles.Delete(ctx, oid)
	if err != nil {
		h.Log.Error("delete profile failed", zap.Error(err), zap.String("profile_id", idHex))
		http.Error(w, "delete error", http.StatusInternalServerError)
		return
	}
	if deleted == 0 {
		h.Log.Info("profile delete: no document found (idempotent)", zap.String("profile_id", idHex))
	}

	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" || !strings.HasPrefix(ret, "/") {
		ret = "/profiles"
	}
	http.Redirect(w, r, ret, http.StatusSeeOther)
}
