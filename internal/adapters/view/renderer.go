// Package view renders the HTML pages. Templates are embedded; each view is
// the layout plus one content block, looked up by view name.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var files embed.FS

var viewNames = []string{
	"hotel-list",
	"hotel-form",
	"hotel-details",
	"room-list",
	"room-form",
	"room-details",
	"error",
}

type Renderer struct {
	views map[string]*template.Template
}

func New() (*Renderer, error) {
	views := make(map[string]*template.Template, len(viewNames))
	for _, name := range viewNames {
		t, err := template.ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		views[name] = t
	}
	return &Renderer{views: views}, nil
}

// Render writes the named view filled with the given attributes.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	t, ok := r.views[name]
	if !ok {
		return fmt.Errorf("view: unknown view %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
