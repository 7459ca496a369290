// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/auth"
)

// Routes wires the dashboard under whatever mount point the top-level
// router chooses (e.g., "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole("admin"))
		pr.Get("/", h.ServeDashboard)
	})

	return r
}
