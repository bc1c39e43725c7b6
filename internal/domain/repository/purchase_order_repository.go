package repository

import "github.com/jhoicas/ObraCore-api/internal/domain/entity"

// PurchaseOrderRepository puerto de persistencia para órdenes de compra.
// Create persiste la orden junto con sus líneas; GetByID las devuelve cargadas.
type PurchaseOrderRepository interface {
	Create(po *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	Update(po *entity.PurchaseOrder) error
	List() ([]*entity.PurchaseOrder, error)
	// LastOrderNumber último número de orden del año indicado ("" si no hay).
	LastOrderNumber(year int) (string, error)
}
