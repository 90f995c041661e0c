package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/catalog"
)

type failingCategories struct{ err error }

func (f failingCategories) List(context.Context) ([]entity.Category, error) { return nil, f.err }

func TestCatalogUseCase_ListCategories(t *testing.T) {
	repo, err := catalog.NewStaticRepository(catalog.VersionV1)
	require.NoError(t, err)
	uc := usecase.NewCatalogUseCase(repo, repo.BrandRepository())

	out, err := uc.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Equal(t, "smartphones", out[0].ID)
	assert.Equal(t, "smartphone", out[0].Icon)

	brands, err := uc.ListBrands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Apple", brands[0].Name)
}

// El error del repositorio se devuelve sin envolver ni resultados parciales.
func TestCatalogUseCase_PropagaError(t *testing.T) {
	boom := errors.New("fallo inesperado")
	uc := usecase.NewCatalogUseCase(failingCategories{err: boom}, nil)

	out, err := uc.ListCategories(context.Background())
	assert.Nil(t, out)
	assert.Same(t, boom, err)

	_, err = uc.ListBrands(context.Background())
	assert.Error(t, err)
}
