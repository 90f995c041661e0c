package web

import (
	"html/template"
	"strings"

	"github.com/jhoicas/tienda-admin/internal/domain/shell"
)

// MenuItem entrada de la barra lateral.
type MenuItem struct {
	Label string
	URL   string
	Icon  string
}

// DefaultMenu navegación del panel de administración.
var DefaultMenu = []MenuItem{
	{Label: "Resumen", URL: "/admin/dashboard", Icon: "layout-dashboard"},
	{Label: "Categorías", URL: "/admin/categories", Icon: "tags"},
	{Label: "Marcas", URL: "/admin/brands", Icon: "badge"},
}

// NavSidebar barra lateral: íconos siempre visibles, etiquetas solo expandida.
// El botón de colapso envía un POST a ToggleURL; el handler HTTP invoca el toggle del layout.
type NavSidebar struct {
	Items     []MenuItem
	ToggleURL string
	// ActivePath ruta actual, para marcar el ítem activo. Se fija por petición con ForRoute.
	ActivePath string
}

// NewNavSidebar construye la barra con el menú por defecto.
func NewNavSidebar(toggleURL string) *NavSidebar {
	return &NavSidebar{Items: DefaultMenu, ToggleURL: toggleURL}
}

// ForRoute devuelve una copia que marca como activo el ítem de la ruta.
func (s *NavSidebar) ForRoute(route shell.Route) shell.Sidebar {
	cp := *s
	cp.ActivePath = route.Path
	return &cp
}

type sidebarItem struct {
	MenuItem
	Active bool
}

type sidebarData struct {
	Collapsed bool
	ToggleURL string
	Items     []sidebarItem
}

// Render implementa shell.Sidebar.
func (s *NavSidebar) Render(p shell.SidebarProps) template.HTML {
	data := sidebarData{Collapsed: p.Collapsed, ToggleURL: s.ToggleURL}
	for _, it := range s.Items {
		active := s.ActivePath != "" && strings.HasPrefix(s.ActivePath, it.URL)
		data.Items = append(data.Items, sidebarItem{MenuItem: it, Active: active})
	}
	return exec("sidebar", data)
}
