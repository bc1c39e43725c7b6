package entity

import "time"

// ProductCategory catálogo de categorías de producto.
type ProductCategory struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// InventoryLocation catálogo de ubicaciones físicas (bodegas, depósitos).
type InventoryLocation struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// Actor es el usuario autenticado que ejecuta una operación. Se extrae del
// token en el middleware y se pasa explícito a los casos de uso; nunca se
// lee de estado global.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// APIKey llave de integración emitida desde ajustes. El valor en claro solo
// se muestra al crearla; en reposo se guarda el hash.
type APIKey struct {
	ID         string
	Name       string
	Prefix     string // primeros caracteres visibles para identificarla
	SecretHash string
	CreatedBy  string
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
