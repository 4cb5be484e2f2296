package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Write renders the page view as a standalone HTML document.
func Write(w io.Writer, page PageView) error {
	err := pageTemplate.ExecuteTemplate(w, "page", page)
	if err != nil {
		return errors.Wrap(err, "could not render page")
	}

	return nil
}
