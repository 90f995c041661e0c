package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-admin/internal/application/dto"
	"github.com/jhoicas/tienda-admin/internal/domain/repository"
)

// CatalogUseCase lectura de categorías y marcas.
// No reintenta ni devuelve resultados parciales: cualquier error del repositorio se propaga tal cual.
type CatalogUseCase struct {
	categories repository.CategoryRepository
	brands     repository.BrandRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(categories repository.CategoryRepository, brands repository.BrandRepository) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, brands: brands}
}

// ListCategories devuelve las categorías en el orden de la tabla.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name, Icon: c.Icon})
	}
	return out, nil
}

// ListBrands devuelve las marcas en el orden de la tabla.
func (uc *CatalogUseCase) ListBrands(ctx context.Context) ([]dto.BrandResponse, error) {
	if uc.brands == nil {
		return nil, fmt.Errorf("catalog: repositorio de marcas no configurado")
	}
	list, err := uc.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BrandResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.BrandResponse{Name: b.Name, Logo: b.Logo})
	}
	return out, nil
}
