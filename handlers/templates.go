package handlers

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFiles embed.FS

// LoadTemplates parses the embedded page templates for gin's HTML renderer.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFiles, "templates/*.html")
}
