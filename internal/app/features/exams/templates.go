// internal/app/features/exams/templates.go
package exams

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "exams",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
