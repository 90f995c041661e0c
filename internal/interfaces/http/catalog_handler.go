package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
)

// CatalogHandler maneja los endpoints públicos del catálogo (categorías y marcas).
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log zerolog.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// ListCategories godoc
// @Summary      Listar categorías
// @Description  Devuelve la tabla fija de categorías. Ante un fallo interno responde 500 con el mensaje del error y sin data.
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(dto.CategoryListResponse{Success: true, Data: out})
}

// ListBrands godoc
// @Summary      Listar marcas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.BrandListResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/brands [get]
func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	out, err := h.uc.ListBrands(c.UserContext())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(dto.BrandListResponse{Success: true, Data: out})
}

// internal único tipo de error del catálogo: fallo inesperado, sin reintentos ni resultados parciales.
func (h *CatalogHandler) internal(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("catálogo")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
