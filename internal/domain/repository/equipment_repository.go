package repository

import "github.com/jhoicas/ObraCore-api/internal/domain/entity"

// EquipmentRepository puerto de persistencia para equipos.
type EquipmentRepository interface {
	Create(eq *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	Update(eq *entity.Equipment) error
	List() ([]*entity.Equipment, error)
}

// EquipmentTransactionRepository historial append-only de un equipo.
type EquipmentTransactionRepository interface {
	Create(tx *entity.EquipmentTransaction) error
	ListByEquipment(equipmentID string, limit int) ([]*entity.EquipmentTransaction, error)
}
