// Package web dibuja el panel de administración con html/template:
// la barra lateral de navegación, las vistas hijas enrutadas y la página completa.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/jhoicas/tienda-admin/internal/domain/shell"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("web").ParseFS(templatesFS, "templates/*.html"))

// exec ejecuta una plantilla y devuelve el HTML. Un fallo se dibuja como vista de error.
func exec(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		buf.Reset()
		_ = templates.ExecuteTemplate(&buf, "error", err.Error())
	}
	return template.HTML(buf.String())
}

// WritePage escribe la página completa a partir de la vista del layout.
func WritePage(w io.Writer, v shell.View) error {
	return templates.ExecuteTemplate(w, "page", v)
}
