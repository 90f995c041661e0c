package entity

// Category representa una categoría del catálogo de la tienda.
// ID es un slug en minúsculas, único dentro de la tabla de configuración.
type Category struct {
	ID   string `validate:"required,slug"`
	Name string `validate:"required"`
	Icon string `validate:"required"` // identificador del ícono (ej. "smartphone")
}
