package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/usecase"
)

// Rutas del panel de administración.
const (
	AdminPrefix     = "/admin"
	AdminTogglePath = AdminPrefix + "/shell/toggle"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC *usecase.CatalogUseCase
	ShellSvc  *usecase.ShellService
	Log       zerolog.Logger
}

// Router registra las rutas de la API y del panel.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo (público)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Log)
	api.Get("/categories", catalogHandler.ListCategories)
	api.Get("/brands", catalogHandler.ListBrands)

	// Layout de administración (JSON)
	shellHandler := NewShellHandler(deps.ShellSvc, deps.Log)
	shells := api.Group("/shell")
	shells.Post("/", shellHandler.Mount)
	shells.Get("/:id", shellHandler.State)
	shells.Post("/:id/toggle", shellHandler.Toggle)
	shells.Delete("/:id", shellHandler.Unmount)

	// Panel HTML. El toggle se registra antes del comodín.
	app.Post(AdminTogglePath, shellHandler.TogglePage)
	app.Get(AdminPrefix, shellHandler.Page)
	app.Get(AdminPrefix+"/*", shellHandler.Page)
}
