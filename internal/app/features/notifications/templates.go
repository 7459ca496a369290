// internal/app/features/notifications/templates.go
package notifications

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "notifications",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
