// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FuncMap holds the helpers the templates use for nullable columns.
var FuncMap = template.FuncMap{
	"str":      str,
	"num":      num,
	"selected": selected,
	"date":     date,
	"join":     strings.Join,
}

// LoadTemplates parses every embedded template. Templates are addressed by
// file name, e.g. "index.html".
func LoadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}

func str(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s != nil {
			return *s
		}
	}
	return ""
}

func num(v any) string {
	switch n := v.(type) {
	case int:
		return fmt.Sprint(n)
	case int64:
		return fmt.Sprint(n)
	case *int:
		if n != nil {
			return fmt.Sprint(*n)
		}
	case *int64:
		if n != nil {
			return fmt.Sprint(*n)
		}
	case *float32:
		if n != nil {
			return fmt.Sprintf("%.3f", *n)
		}
	}
	return ""
}

// selected reports whether the optional filter equals the option value.
func selected(filter any, value any) bool {
	f := num(filter)
	return f != "" && f == num(value)
}

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
