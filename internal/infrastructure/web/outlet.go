package web

import (
	"context"
	"html/template"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/shell"
)

// catalogReader lo que las vistas hijas necesitan del catálogo.
// Lo implementa *usecase.CatalogUseCase.
type catalogReader interface {
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	ListBrands(ctx context.Context) ([]dto.BrandResponse, error)
}

// ViewFunc dibuja una vista hija.
type ViewFunc func(ctx context.Context, route shell.Route) template.HTML

// RouteOutlet resuelve la vista hija a partir del primer segmento de la ruta bajo Prefix.
// Las rutas desconocidas y los fallos de las vistas se dibujan aquí mismo.
type RouteOutlet struct {
	Prefix  string
	Default string
	views   map[string]ViewFunc
}

// NewRouteOutlet registra las vistas del panel: dashboard, categories y brands.
func NewRouteOutlet(prefix string, catalog catalogReader) *RouteOutlet {
	o := &RouteOutlet{Prefix: prefix, Default: "dashboard", views: map[string]ViewFunc{}}
	o.Handle("dashboard", func(ctx context.Context, _ shell.Route) template.HTML {
		cats, err := catalog.ListCategories(ctx)
		if err != nil {
			return exec("error", err.Error())
		}
		brands, err := catalog.ListBrands(ctx)
		if err != nil {
			return exec("error", err.Error())
		}
		return exec("dashboard", map[string]int{"Categories": len(cats), "Brands": len(brands)})
	})
	o.Handle("categories", func(ctx context.Context, _ shell.Route) template.HTML {
		cats, err := catalog.ListCategories(ctx)
		if err != nil {
			return exec("error", err.Error())
		}
		return exec("categories", cats)
	})
	o.Handle("brands", func(ctx context.Context, _ shell.Route) template.HTML {
		brands, err := catalog.ListBrands(ctx)
		if err != nil {
			return exec("error", err.Error())
		}
		return exec("brands", brands)
	})
	return o
}

// Handle registra (o reemplaza) una vista hija.
func (o *RouteOutlet) Handle(name string, fn ViewFunc) {
	o.views[name] = fn
}

// Resolve implementa shell.Outlet.
func (o *RouteOutlet) Resolve(ctx context.Context, route shell.Route) template.HTML {
	name := o.segment(route.Path)
	fn, ok := o.views[name]
	if !ok {
		return exec("notfound", route.Path)
	}
	return fn(ctx, route)
}

func (o *RouteOutlet) segment(path string) string {
	rest := strings.Trim(strings.TrimPrefix(path, o.Prefix), "/")
	if rest == "" {
		return o.Default
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
