package http

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/swaggo/swag"
)

// MountDocs publica Swagger UI en /docs a partir del documento registrado en swag
// (paquete docs). El middleware de swagger lee un archivo, así que el JSON se
// vuelca en dir antes de registrarlo; el spec queda publicado en "/" + dir + "/swagger.json".
func MountDocs(app *fiber.App, dir, title string) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return fmt.Errorf("docs: leer swagger: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("docs: crear %s: %w", dir, err)
	}
	path := filepath.Join(dir, "swagger.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("docs: escribir %s: %w", path, err)
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: path,
		Path:     "docs",
		Title:    title,
	}))
	return nil
}
