// internal/app/features/classes/routes.go
package classes

import (
	"github.com/go-chi/chi/v5"

	"github.com/huulamthcsyl/e-tutor-web/internal/app/system/auth"
)

// Routes mounts all class routes under the base path (typically "/classes").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireRole("admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
		pr.Get("/{id}/delete", h.ServeDeleteConfirm)
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
