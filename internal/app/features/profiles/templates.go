// internal/app/features/profiles/templates.go
package profiles

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "profiles",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
