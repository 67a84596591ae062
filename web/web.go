// Package web holds the embedded page templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FuncMap is available to every template.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"comma": func(n int) string { return humanize.Comma(int64(n)) },
		"rating": func(r float64) string {
			return humanize.FormatFloat("#.#", r)
		},
		"pathEscape":  url.PathEscape,
		"join":        strings.Join,
		"lower":       strings.ToLower,
		"currentYear": func() int { return time.Now().Year() },
	}
}

// Templates parses every page template.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

// Static returns the static asset tree rooted at its top directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
