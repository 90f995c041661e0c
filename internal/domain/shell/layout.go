// Package shell modela el layout de administración: una barra lateral
// colapsable y una región de contenido que aloja vistas enrutadas.
//
// El layout es una función pura de su estado (un único booleano) y de los
// colaboradores que recibe; no lee estado global ni hace I/O.
package shell

import (
	"context"
	"html/template"
)

// State estados posibles de la barra lateral.
type State string

const (
	StateExpanded  State = "expanded"
	StateCollapsed State = "collapsed"
)

// Offset margen izquierdo que la región de contenido reserva para la barra lateral.
type Offset string

// Offsets clases de margen para cada estado.
type Offsets struct {
	Wide   Offset // barra expandida
	Narrow Offset // barra colapsada
}

// DefaultOffsets valores por defecto (clases utilitarias estilo Tailwind).
var DefaultOffsets = Offsets{Wide: "ml-64", Narrow: "ml-20"}

// Frame par estado/margen. Se deriva siempre del mismo booleano,
// por lo que no existe un Frame con estado y margen desalineados.
type Frame struct {
	State  State  `json:"state"`
	Offset Offset `json:"offset"`
}

// Collapsed indica si el frame corresponde a la barra colapsada.
func (f Frame) Collapsed() bool { return f.State == StateCollapsed }

// HeadMeta efecto declarado sobre el <head> del documento.
type HeadMeta struct {
	Title string `json:"title"`
}

// Route contexto de navegación inyectado explícitamente.
type Route struct {
	Path   string
	Params map[string]string
}

// SidebarProps lo que el layout expone a la barra lateral.
type SidebarProps struct {
	Collapsed bool
	OnToggle  func()
}

// Sidebar colaborador que dibuja la navegación e invoca OnToggle ante la interacción del usuario.
type Sidebar interface {
	Render(props SidebarProps) template.HTML
}

// Outlet colaborador que resuelve la vista hija activa para una ruta.
// Si no puede resolverla, dibuja su propio fallback: el layout no valida su salida.
type Outlet interface {
	Resolve(ctx context.Context, route Route) template.HTML
}

// View resultado de dibujar el layout.
type View struct {
	Head    HeadMeta
	Frame   Frame
	Sidebar template.HTML
	Content template.HTML
}

// Layout instancia montada del shell de administración.
// No es segura para uso concurrente: quien la posee serializa los eventos.
type Layout struct {
	collapsed bool
	head      HeadMeta
	offsets   Offsets
}

// Mount crea una instancia expandida y declara el título de la página una sola vez.
func Mount(title string, offsets Offsets) *Layout {
	if offsets.Wide == "" {
		offsets.Wide = DefaultOffsets.Wide
	}
	if offsets.Narrow == "" {
		offsets.Narrow = DefaultOffsets.Narrow
	}
	return &Layout{head: HeadMeta{Title: title}, offsets: offsets}
}

// Collapsed devuelve el estado actual de la barra lateral.
func (l *Layout) Collapsed() bool { return l.collapsed }

// Toggle invierte el estado. Cada llamada cuenta; no hay debounce.
func (l *Layout) Toggle() { l.collapsed = !l.collapsed }

// Frame devuelve el par estado/margen actual.
func (l *Layout) Frame() Frame {
	if l.collapsed {
		return Frame{State: StateCollapsed, Offset: l.offsets.Narrow}
	}
	return Frame{State: StateExpanded, Offset: l.offsets.Wide}
}

// Head devuelve el efecto de título declarado al montar; no depende del estado.
func (l *Layout) Head() HeadMeta { return l.head }

// Render dibuja el layout. La barra recibe el estado y el toggle; el contenido
// se delega por completo al Outlet. No falla.
func (l *Layout) Render(ctx context.Context, sidebar Sidebar, outlet Outlet, route Route) View {
	frame := l.Frame()
	v := View{Head: l.head, Frame: frame}
	if sidebar != nil {
		v.Sidebar = sidebar.Render(SidebarProps{Collapsed: frame.Collapsed(), OnToggle: l.Toggle})
	}
	if outlet != nil {
		v.Content = outlet.Resolve(ctx, route)
	}
	return v
}
