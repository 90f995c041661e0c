package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// BrandRepository define el puerto de lectura de marcas.
type BrandRepository interface {
	List(ctx context.Context) ([]entity.Brand, error)
}
