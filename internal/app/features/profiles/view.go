// internal/app/features/profiles/view.go
package profiles

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	profilestore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/profiles"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/viewdata"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

// ServeView handles GET /profiles/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
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

	data := viewData{
		BaseVM:    viewdata.NewBaseVM(r, p.Name, "/profiles"),
		ID:        p.ID.Hex(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.PhoneNumber,
		RoleName:  models.RoleName(p.Role),
		Status:    p.Status,
		AvatarURL: p.AvatarURL,
		Address:   p.Address,
		CreatedAt: p.CreatedAt.Display(),
	}

	if !p.BirthDate.Time.IsZero() {
		data.BirthDate = p.BirthDate.Time.UTC().Format("02/01/2006")
	}

	templates.Render(w, r, "profile_view", data)
}
