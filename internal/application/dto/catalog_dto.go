package dto

// CategoryResponse categoría tal como la consume el frontend.
type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// CategoryListResponse sobre de éxito de GET /api/categories.
type CategoryListResponse struct {
	Success bool               `json:"success"`
	Data    []CategoryResponse `json:"data"`
}

// BrandResponse marca para el carrusel de la tienda.
type BrandResponse struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// BrandListResponse sobre de éxito de GET /api/brands.
type BrandListResponse struct {
	Success bool            `json:"success"`
	Data    []BrandResponse `json:"data"`
}
