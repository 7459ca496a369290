// internal/app/features/homeworks/templates.go
package homeworks

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var tplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "homeworks",
		FS:       tplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
