package repository

import "github.com/jhoicas/ObraCore-api/internal/domain/entity"

// CategoryRepository catálogo de categorías de producto.
type CategoryRepository interface {
	List() ([]*entity.ProductCategory, error)
}

// LocationRepository catálogo de ubicaciones de inventario.
type LocationRepository interface {
	List() ([]*entity.InventoryLocation, error)
}

// APIKeyRepository llaves de integración emitidas desde ajustes.
type APIKeyRepository interface {
	Create(key *entity.APIKey) error
	List() ([]*entity.APIKey, error)
}
