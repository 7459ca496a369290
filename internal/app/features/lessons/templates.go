// internal/app/features/lessons/templates.go
package lessons

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "lessons",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
