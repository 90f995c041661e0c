package http

import (
	"bytes"
	"errors"
	"net/url"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/shell"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/web"
)

// ShellCookie cookie que asocia el navegador con su layout montado.
const ShellCookie = "shell_id"

// ShellHandler expone el layout de administración: páginas HTML bajo /admin y API JSON bajo /api/shell.
type ShellHandler struct {
	svc *usecase.ShellService
	log zerolog.Logger
}

// NewShellHandler construye el handler.
func NewShellHandler(svc *usecase.ShellService, log zerolog.Logger) *ShellHandler {
	return &ShellHandler{svc: svc, log: log}
}

// Page dibuja la página de administración para la ruta actual.
// Si el navegador no tiene un layout montado (o expiró), monta uno nuevo.
func (h *ShellHandler) Page(c *fiber.Ctx) error {
	id, view, mounted := h.svc.RenderOrMount(c.UserContext(), c.Cookies(ShellCookie), routeFrom(c))
	if mounted {
		setShellCookie(c, id)
	}
	var buf bytes.Buffer
	if err := web.WritePage(&buf, view); err != nil {
		return h.internal(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// TogglePage recibe el POST del botón de la barra lateral y vuelve a la página de origen.
// Solo se vuelve a rutas del panel; cualquier otro Referer redirige a AdminPrefix.
func (h *ShellHandler) TogglePage(c *fiber.Ctx) error {
	st, mounted := h.svc.ToggleOrMount(c.UserContext(), c.Cookies(ShellCookie))
	if mounted {
		setShellCookie(c, st.ID)
	}
	return c.Redirect(adminBack(c.Get(fiber.HeaderReferer)), fiber.StatusSeeOther)
}

// Mount godoc
// @Summary      Montar layout de administración
// @Tags         shell
// @Produce      json
// @Success      201  {object}  dto.ShellStateResponse
// @Router       /api/shell [post]
func (h *ShellHandler) Mount(c *fiber.Ctx) error {
	out, err := h.svc.Mount(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// State godoc
// @Summary      Estado del layout
// @Tags         shell
// @Produce      json
// @Param        id   path  string  true  "ID del layout"
// @Success      200  {object}  dto.ShellStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shell/{id} [get]
func (h *ShellHandler) State(c *fiber.Ctx) error {
	out, err := h.svc.State(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Toggle godoc
// @Summary      Colapsar / expandir la barra lateral
// @Tags         shell
// @Produce      json
// @Param        id   path  string  true  "ID del layout"
// @Success      200  {object}  dto.ShellStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shell/{id}/toggle [post]
func (h *ShellHandler) Toggle(c *fiber.Ctx) error {
	out, err := h.svc.Toggle(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Unmount godoc
// @Summary      Desmontar layout
// @Tags         shell
// @Param        id   path  string  true  "ID del layout"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shell/{id} [delete]
func (h *ShellHandler) Unmount(c *fiber.Ctx) error {
	if err := h.svc.Unmount(c.UserContext(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func setShellCookie(c *fiber.Ctx, id string) {
	c.Cookie(&fiber.Cookie{Name: ShellCookie, Value: id, Path: AdminPrefix, HTTPOnly: true, SameSite: "Lax"})
}

// adminBack devuelve la ruta local (path + query) del Referer si pertenece al panel.
// Se descartan esquema y host, así que nunca redirige fuera del sitio.
func adminBack(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" {
		return AdminPrefix
	}
	p := path.Clean(u.Path)
	if p != AdminPrefix && !strings.HasPrefix(p, AdminPrefix+"/") {
		return AdminPrefix
	}
	if u.RawQuery != "" {
		p += "?" + u.RawQuery
	}
	return p
}

func (h *ShellHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrShellNotMounted) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	}
	return h.internal(c, err)
}

func (h *ShellHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("shell")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func routeFrom(c *fiber.Ctx) shell.Route {
	return shell.Route{Path: c.Path(), Params: c.AllParams()}
}
