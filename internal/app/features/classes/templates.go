// internal/app/features/classes/templates.go
package classes

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "classes",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
