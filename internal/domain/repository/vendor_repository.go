package repository

import "github.com/jhoicas/ObraCore-api/internal/domain/entity"

// VendorRepository puerto de persistencia para proveedores.
type VendorRepository interface {
	Create(vendor *entity.Vendor) error
	GetByID(id string) (*entity.Vendor, error)
	Update(vendor *entity.Vendor) error
	List() ([]*entity.Vendor, error)
}
