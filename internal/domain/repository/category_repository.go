package repository

import (
	"context"

	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

// CategoryRepository define el puerto de lectura de categorías (DIP).
// Hoy lo implementa la tabla estática; una base de datos podría reemplazarla sin tocar los handlers.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
}
