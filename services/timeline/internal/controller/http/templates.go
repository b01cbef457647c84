package http

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"safeURL": func(s string) template.URL {
		// Previews are data URIs built from validated image uploads.
		if strings.HasPrefix(s, "data:image/") {
			return template.URL(s)
		}
		return ""
	},
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}
