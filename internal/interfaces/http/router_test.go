package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/jhoicas/tienda-admin/docs"
	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
	"github.com/jhoicas/tienda-admin/internal/domain/shell"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/catalog"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/web"
	apphttp "github.com/jhoicas/tienda-admin/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testTitle = "Panel de Administración"

type failingCategories struct{ msg string }

func (f failingCategories) List(context.Context) ([]entity.Category, error) {
	return nil, errors.New(f.msg)
}

// buildTestApp arma la aplicación completa. Si categories es nil usa la tabla v1.
func buildTestApp(t *testing.T, categories repository.CategoryRepository) (*fiber.App, *usecase.ShellService) {
	t.Helper()
	repo, err := catalog.NewStaticRepository(catalog.VersionV1)
	require.NoError(t, err)
	if categories == nil {
		categories = repo
	}
	catalogUC := usecase.NewCatalogUseCase(categories, repo.BrandRepository())
	shellSvc := usecase.NewShellService(usecase.ShellConfig{
		Title:   testTitle,
		Offsets: shell.DefaultOffsets,
		Sidebar: web.NewNavSidebar(apphttp.AdminTogglePath),
		Outlet:  web.NewRouteOutlet(apphttp.AdminPrefix, catalogUC),
		Log:     zerolog.Nop(),
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CatalogUC: catalogUC, ShellSvc: shellSvc, Log: zerolog.Nop()})
	return app, shellSvc
}

func do(t *testing.T, app *fiber.App, method, target string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func shellCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.ShellCookie {
			return c
		}
	}
	return nil
}

func decodeShell(t *testing.T, resp *http.Response) dto.ShellStateResponse {
	t.Helper()
	defer resp.Body.Close()
	var st dto.ShellStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&st))
	return st
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestListCategories_SeisEntradasFijas(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := do(t, app, http.MethodGet, "/api/categories", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool                   `json:"success"`
		Data    []dto.CategoryResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 6)
	assert.Equal(t, "smartphones", body.Data[0].ID)
}

// Un fallo interno responde 500 con el mensaje del error y sin campo data.
func TestListCategories_FalloInterno(t *testing.T) {
	app, _ := buildTestApp(t, failingCategories{msg: "tabla corrupta"})
	resp := do(t, app, http.MethodGet, "/api/categories", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "tabla corrupta", body["message"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "success")
}

func TestListBrands(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := do(t, app, http.MethodGet, "/api/brands", nil)
	defer resp.Body.Close()

	var body dto.BrandListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data, 6)
}

// ──────────────────────────────────────────────────────────────────────────────
// Layout (API JSON)
// ──────────────────────────────────────────────────────────────────────────────

func TestShellAPI_CicloDeVida(t *testing.T) {
	app, svc := buildTestApp(t, nil)

	resp := do(t, app, http.MethodPost, "/api/shell", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	st := decodeShell(t, resp)
	assert.False(t, st.Collapsed)
	assert.Equal(t, "ml-64", st.Offset)
	assert.Equal(t, testTitle, st.Title)

	resp = do(t, app, http.MethodPost, "/api/shell/"+st.ID+"/toggle", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	toggled := decodeShell(t, resp)
	assert.True(t, toggled.Collapsed)
	assert.Equal(t, "collapsed", toggled.State)
	assert.Equal(t, "ml-20", toggled.Offset)

	resp = do(t, app, http.MethodGet, "/api/shell/"+st.ID, nil)
	assert.True(t, decodeShell(t, resp).Collapsed)

	resp = do(t, app, http.MethodDelete, "/api/shell/"+st.ID, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, svc.Len())

	resp = do(t, app, http.MethodGet, "/api/shell/"+st.ID, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestShellAPI_ToggleDesconocido(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := do(t, app, http.MethodPost, "/api/shell/no-existe/toggle", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Panel HTML
// ──────────────────────────────────────────────────────────────────────────────

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestAdminPage_MontaYDibuja(t *testing.T) {
	app, svc := buildTestApp(t, nil)

	resp := do(t, app, http.MethodGet, "/admin/categories", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	cookie := shellCookie(resp)
	require.NotNil(t, cookie)

	html := readBody(t, resp)
	assert.Equal(t, 1, strings.Count(html, "<title>"))
	assert.Contains(t, html, "<title>"+testTitle+"</title>")
	assert.Contains(t, html, `data-offset="ml-64"`)
	assert.Contains(t, html, `data-id="smartphones"`)
	assert.Equal(t, 1, svc.Len())

	// La misma cookie reutiliza el montaje.
	resp = do(t, app, http.MethodGet, "/admin/brands", cookie)
	assert.Nil(t, shellCookie(resp))
	assert.Contains(t, readBody(t, resp), "Marcas")
	assert.Equal(t, 1, svc.Len())
}

func TestAdminPage_ToggleCambiaMargenYTituloSeMantiene(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	resp := do(t, app, http.MethodGet, "/admin", nil)
	cookie := shellCookie(resp)
	require.NotNil(t, cookie)
	resp.Body.Close()

	resp = do(t, app, http.MethodPost, apphttp.AdminTogglePath, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	html := readBody(t, do(t, app, http.MethodGet, "/admin", cookie))
	assert.Contains(t, html, `data-offset="ml-20"`)
	assert.Contains(t, html, `data-state="collapsed"`)
	assert.Equal(t, 1, strings.Count(html, "<title>"+testTitle+"</title>"))

	resp = do(t, app, http.MethodPost, apphttp.AdminTogglePath, cookie)
	resp.Body.Close()
	html = readBody(t, do(t, app, http.MethodGet, "/admin", cookie))
	assert.Contains(t, html, `data-offset="ml-64"`)
	assert.Contains(t, html, `data-state="expanded"`)
}

// Una cookie de un montaje expirado monta uno nuevo.
func TestAdminPage_CookieExpiradaRemonta(t *testing.T) {
	app, svc := buildTestApp(t, nil)
	stale := &http.Cookie{Name: apphttp.ShellCookie, Value: "viejo"}

	resp := do(t, app, http.MethodGet, "/admin", stale)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fresh := shellCookie(resp)
	require.NotNil(t, fresh)
	assert.NotEqual(t, "viejo", fresh.Value)
	resp.Body.Close()
	assert.Equal(t, 1, svc.Len())
}

func TestAdminPage_RutaDesconocidaLaDibujaElOutlet(t *testing.T) {
	app, _ := buildTestApp(t, nil)
	resp := do(t, app, http.MethodGet, "/admin/reportes", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Página no encontrada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware y docs
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(apphttp.RequestLogger(zerolog.New(&buf)))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadGateway, "upstream") })

	resp := do(t, app, http.MethodGet, "/ping", nil)
	resp.Body.Close()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, 200, entry["status"])
	assert.NotEmpty(t, entry["request_id"])

	buf.Reset()
	resp = do(t, app, http.MethodGet, "/boom", nil)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, 502, entry["status"])
}

func TestMountDocs_SirveSwaggerJSON(t *testing.T) {
	app := fiber.New()
	dir := t.TempDir()
	require.NoError(t, apphttp.MountDocs(app, dir, "test"))

	specPath := filepath.Join(dir, "swagger.json")
	_, err := os.Stat(specPath)
	require.NoError(t, err)

	// El middleware publica el spec en BasePath + FilePath.
	resp := do(t, app, http.MethodGet, specPath, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/api/categories")

	resp = do(t, app, http.MethodGet, "/docs", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// El toggle vuelve solo a rutas del panel; Referers externos o fuera de /admin van a /admin.
func TestTogglePage_RedireccionSoloDentroDelPanel(t *testing.T) {
	app, _ := buildTestApp(t, nil)

	cases := map[string]string{
		"":                                  "/admin",
		"https://evil.example/phish":        "/admin",
		"https://evil.example/admin/brands": "/admin/brands",
		"//evil.example/admin":              "/admin",
		"http://localhost/api/categories":   "/admin",
		"http://localhost/admin/../api/x":   "/admin",
		"http://localhost/admin/categories": "/admin/categories",
		"http://localhost/administrador":    "/admin",
		"/admin/brands?page=2":              "/admin/brands?page=2",
	}
	for referer, want := range cases {
		t.Run(referer, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, apphttp.AdminTogglePath, nil)
			if referer != "" {
				req.Header.Set("Referer", referer)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
			assert.Equal(t, want, resp.Header.Get("Location"))
		})
	}
}

// Sin cookie, el toggle monta un layout nuevo, lo colapsa y entrega la cookie.
func TestTogglePage_SinCookieMontaYColapsa(t *testing.T) {
	app, svc := buildTestApp(t, nil)

	resp := do(t, app, http.MethodPost, apphttp.AdminTogglePath, nil)
	resp.Body.Close()
	cookie := shellCookie(resp)
	require.NotNil(t, cookie)
	assert.Equal(t, 1, svc.Len())

	html := readBody(t, do(t, app, http.MethodGet, "/admin", cookie))
	assert.Contains(t, html, `data-state="collapsed"`)
}
