// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	statsstore "github.com/huulamthcsyl/e-tutor-web/internal/app/store/stats"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/authz"
	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/timeouts"
	"github.com/huulamthcsyl/e-tutor-web/internal/domain/models"
)

type Handler struct {
	Stats *statsstore.Service
	Log   *zap.Logger
	Clock func() models.FlexTime
}

func NewHandler(stats *statsstore.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Stats: stats,
		Log:   logger,
		Clock: models.Now,
	}
}

// ServeDashboard handles GET /dashboard.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	_, uname, _, ok := authz.UserCtx(r)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	overview := h.Stats.Compute(ctx, h.Clock().Time)

	h.Log.Debug("dashboard served", zap.String("user", uname))

	templates.Render(w, r, "dashboard", newDashboardData(r, overview))
}
