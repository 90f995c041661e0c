// Package catalog contiene las tablas versionadas de configuración del catálogo
// (categorías y marcas) y el adaptador que las expone como repositorio.
package catalog

import "github.com/jhoicas/tienda-admin/internal/domain/entity"

// =============================================================================
// Tablas de catálogo.
// Cada versión es inmutable: para cambiar el contenido se agrega una versión
// nueva y se selecciona con CATALOG_VERSION.
// =============================================================================

// VersionV1 identificador de la primera tabla publicada.
const VersionV1 = "v1"

// Identificadores de categoría (slugs).
const (
	CategorySmartphones = "smartphones"
	CategoryLaptops     = "laptops"
	CategoryTablets     = "tablets"
	CategoryAudio       = "audio"
	CategoryWearables   = "wearables"
	CategoryCameras     = "cameras"
)

// Table agrupa las listas fijas de una versión.
type Table struct {
	Version    string            `validate:"required"`
	Categories []entity.Category `validate:"required,unique=ID,dive"`
	Brands     []entity.Brand    `validate:"required,unique=Name,dive"`
}

// V1 tabla publicada actualmente. El orden de las listas es el orden de presentación.
var V1 = Table{
	Version: VersionV1,
	Categories: []entity.Category{
		{ID: CategorySmartphones, Name: "Smartphones", Icon: "smartphone"},
		{ID: CategoryLaptops, Name: "Laptops", Icon: "laptop"},
		{ID: CategoryTablets, Name: "Tablets", Icon: "tablet"},
		{ID: CategoryAudio, Name: "Audio", Icon: "headphones"},
		{ID: CategoryWearables, Name: "Wearables", Icon: "watch"},
		{ID: CategoryCameras, Name: "Cámaras", Icon: "camera"},
	},
	Brands: []entity.Brand{
		{Name: "Apple", Logo: "\uf8ff"},
		{Name: "Samsung", Logo: "S"},
		{Name: "Sony", Logo: "SONY"},
		{Name: "Xiaomi", Logo: "mi"},
		{Name: "Lenovo", Logo: "L"},
		{Name: "Canon", Logo: "C"},
	},
}

// tables versiones conocidas.
var tables = map[string]Table{
	VersionV1: V1,
}
