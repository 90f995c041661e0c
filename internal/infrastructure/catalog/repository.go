package catalog

import (
	"context"
	"fmt"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/tienda-admin/internal/domain"
	"github.com/jhoicas/tienda-admin/internal/domain/entity"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// StaticRepository implementa CategoryRepository y BrandRepository sobre una tabla fija.
type StaticRepository struct {
	table Table
}

// NewStaticRepository selecciona la versión indicada y la valida.
// Devuelve error si la versión no existe o si la tabla viola sus restricciones
// (campos vacíos, slug inválido, ids o nombres repetidos).
func NewStaticRepository(version string) (*StaticRepository, error) {
	t, ok := tables[version]
	if !ok {
		return nil, fmt.Errorf("catalog %q: %w", version, domain.ErrCatalogUnknown)
	}
	if err := Validate(t); err != nil {
		return nil, err
	}
	return &StaticRepository{table: t}, nil
}

// Validate comprueba las restricciones de una tabla.
func Validate(t Table) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("catalog: registrar validación slug: %w", err)
	}
	if err := validate.Struct(t); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			fe := ve[0]
			return fmt.Errorf("catalog %s: campo %s falla la regla %q: %w", t.Version, fe.Namespace(), fe.Tag(), domain.ErrInvalidInput)
		}
		return fmt.Errorf("catalog %s: %w", t.Version, err)
	}
	return nil
}

// Version devuelve la versión de la tabla servida.
func (r *StaticRepository) Version() string { return r.table.Version }

// List devuelve una copia de las categorías para que nadie mute la tabla.
func (r *StaticRepository) List(ctx context.Context) ([]entity.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(r.table.Categories), nil
}

// BrandRepository vista del mismo repositorio como puerto de marcas.
func (r *StaticRepository) BrandRepository() *BrandView { return &BrandView{table: &r.table} }

// BrandView adapta la tabla al puerto BrandRepository.
type BrandView struct {
	table *Table
}

// List devuelve una copia de las marcas.
func (b *BrandView) List(ctx context.Context) ([]entity.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(b.table.Brands), nil
}
