package entity

// Brand representa una marca mostrada en el carrusel de la tienda.
type Brand struct {
	Name string `validate:"required"`
	Logo string `validate:"required"` // glifo o identificador del logo
}
