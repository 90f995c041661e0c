package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/shell"
)

// ShellConfig parámetros del registro de layouts.
type ShellConfig struct {
	Title   string
	Offsets shell.Offsets
	IdleTTL time.Duration // 0 = los montajes no expiran
	Sidebar shell.Sidebar
	Outlet  shell.Outlet
	Log     zerolog.Logger
}

// routeAwareSidebar barra lateral que necesita la ruta actual (ítem activo).
type routeAwareSidebar interface {
	ForRoute(route shell.Route) shell.Sidebar
}

// mount un layout montado. Su mutex serializa los eventos del cliente
// igual que el bucle de eventos de la UI.
type mount struct {
	mu       sync.Mutex
	layout   *shell.Layout
	lastSeen time.Time
}

// ShellService registro en memoria de layouts de administración montados.
// El estado no se persiste: al desmontar o expirar se descarta.
type ShellService struct {
	cfg    ShellConfig
	now    func() time.Time
	mu     sync.RWMutex
	mounts map[string]*mount
}

// NewShellService construye el registro.
func NewShellService(cfg ShellConfig) *ShellService {
	return &ShellService{cfg: cfg, now: time.Now, mounts: make(map[string]*mount)}
}

// WithClock reemplaza el reloj (tests).
func (s *ShellService) WithClock(now func() time.Time) *ShellService {
	s.now = now
	return s
}

// Mount monta un layout nuevo en estado expandido.
func (s *ShellService) Mount(_ context.Context) (*dto.ShellStateResponse, error) {
	id := uuid.New().String()
	m := &mount{layout: shell.Mount(s.cfg.Title, s.cfg.Offsets), lastSeen: s.now()}

	s.mu.Lock()
	s.mounts[id] = m
	s.mu.Unlock()

	s.cfg.Log.Debug().Str("shell_id", id).Msg("layout montado")
	return toShellState(id, m.layout), nil
}

// Toggle invierte la barra lateral y devuelve el frame resultante en la misma sección crítica.
func (s *ShellService) Toggle(_ context.Context, id string) (*dto.ShellStateResponse, error) {
	m, err := s.get(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layout.Toggle()
	m.lastSeen = s.now()
	return toShellState(id, m.layout), nil
}

// State devuelve el estado actual sin modificarlo.
func (s *ShellService) State(_ context.Context, id string) (*dto.ShellStateResponse, error) {
	m, err := s.get(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = s.now()
	return toShellState(id, m.layout), nil
}

// Render dibuja el layout montado para la ruta indicada.
func (s *ShellService) Render(ctx context.Context, id string, route shell.Route) (shell.View, error) {
	m, err := s.get(id)
	if err != nil {
		return shell.View{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = s.now()
	sidebar := s.cfg.Sidebar
	if ra, ok := sidebar.(routeAwareSidebar); ok {
		sidebar = ra.ForRoute(route)
	}
	return m.layout.Render(ctx, sidebar, s.cfg.Outlet, route), nil
}

// RenderOrMount dibuja el layout de id o, si no existe (o expiró), monta uno nuevo y lo dibuja.
// La búsqueda y el montaje ocurren bajo el mismo lock del registro, así que una
// expiración concurrente no deja la petición sin layout. Devuelve el id usado y si se montó.
func (s *ShellService) RenderOrMount(ctx context.Context, id string, route shell.Route) (string, shell.View, bool) {
	id, m, mounted := s.acquire(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastSeen = s.now()
	sidebar := s.cfg.Sidebar
	if ra, ok := sidebar.(routeAwareSidebar); ok {
		sidebar = ra.ForRoute(route)
	}
	return id, m.layout.Render(ctx, sidebar, s.cfg.Outlet, route), mounted
}

// ToggleOrMount invierte la barra del layout de id, montándolo antes si no existe.
func (s *ShellService) ToggleOrMount(_ context.Context, id string) (*dto.ShellStateResponse, bool) {
	id, m, mounted := s.acquire(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.layout.Toggle()
	m.lastSeen = s.now()
	return toShellState(id, m.layout), mounted
}

// Unmount descarta el estado del layout.
func (s *ShellService) Unmount(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.mounts[id]; !ok {
		return domain.ErrShellNotMounted
	}
	delete(s.mounts, id)
	s.cfg.Log.Debug().Str("shell_id", id).Msg("layout desmontado")
	return nil
}

// Len cantidad de layouts montados.
func (s *ShellService) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mounts)
}

// Sweep desmonta los layouts inactivos por más de IdleTTL. Devuelve cuántos eliminó.
func (s *ShellService) Sweep(now time.Time) int {
	if s.cfg.IdleTTL <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, m := range s.mounts {
		m.mu.Lock()
		idle := now.Sub(m.lastSeen)
		m.mu.Unlock()
		if idle > s.cfg.IdleTTL {
			delete(s.mounts, id)
			removed++
		}
	}
	return removed
}

// RunJanitor ejecuta Sweep periódicamente hasta que ctx se cancele.
func (s *ShellService) RunJanitor(ctx context.Context, every time.Duration) {
	if every <= 0 || s.cfg.IdleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				s.cfg.Log.Info().Int("removed", n).Int("mounted", s.Len()).Msg("layouts inactivos desmontados")
			}
		}
	}
}

// acquire devuelve el montaje de id o registra uno nuevo.
func (s *ShellService) acquire(id string) (string, *mount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.mounts[id]; ok && id != "" {
		return id, m, false
	}
	id = uuid.New().String()
	m := &mount{layout: shell.Mount(s.cfg.Title, s.cfg.Offsets), lastSeen: s.now()}
	s.mounts[id] = m
	s.cfg.Log.Debug().Str("shell_id", id).Msg("layout montado")
	return id, m, true
}

func (s *ShellService) get(id string) (*mount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.mounts[id]
	if !ok {
		return nil, domain.ErrShellNotMounted
	}
	return m, nil
}

func toShellState(id string, l *shell.Layout) *dto.ShellStateResponse {
	f := l.Frame()
	return &dto.ShellStateResponse{
		ID:        id,
		Title:     l.Head().Title,
		Collapsed: f.Collapsed(),
		State:     string(f.State),
		Offset:    string(f.Offset),
	}
}
