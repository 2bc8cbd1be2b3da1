// Package web holds the embedded HTML pages for the scoring form.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded form and result pages. Panics on a broken
// template, which only happens on a bad build.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
