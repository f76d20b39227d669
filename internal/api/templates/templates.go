// Package templates holds the embedded HTML views for the web UI.
package templates

import (
	"embed"
	"html/template"

	"github.com/jon4hz/surfcast/internal/forecast"
	"github.com/jon4hz/surfcast/internal/spots"
)

//go:embed *.html
var templateFS embed.FS

// Load parses the embedded templates with the view helper functions.
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"cardinal":  cardinal,
		"hourLabel": hourLabel,
		"slug":      spots.Slug,
	}).ParseFS(templateFS, "*.html")
}

// cardinal and hourLabel accept any because values decoded from the
// provider's JSON arrive as float64.

func cardinal(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return ""
	}
	return forecast.Cardinal(f)
}

func hourLabel(v any) string {
	f, ok := toFloat(v)
	if !ok {
		return ""
	}
	return forecast.HourLabel(int64(f))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
