package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de equipo.
const (
	EquipmentTypeHeavyMachinery  = "heavy_machinery"
	EquipmentTypeVehicles        = "vehicles"
	EquipmentTypeTools           = "tools"
	EquipmentTypeSafetyEquipment = "safety_equipment"
	EquipmentTypeOther           = "other"
)

// Estados operativos de equipo.
const (
	EquipmentStatusAvailable    = "available"
	EquipmentStatusInUse        = "in_use"
	EquipmentStatusMaintenance  = "maintenance"
	EquipmentStatusOutOfService = "out_of_service"
	EquipmentStatusRetired      = "retired"
)

// Condición física de equipo.
const (
	EquipmentConditionExcellent = "excellent"
	EquipmentConditionGood      = "good"
	EquipmentConditionFair      = "fair"
	EquipmentConditionPoor      = "poor"
)

// Equipment representa maquinaria, vehículos o herramientas de la empresa.
type Equipment struct {
	ID                 string
	Name               string
	Type               string
	Category           string
	Model              string
	Manufacturer       string
	SerialNumber       string
	Status             string
	Condition          string
	Location           string
	AssignedTo         string
	Project            string
	PurchasePrice      decimal.Decimal
	CurrentValue       decimal.Decimal
	MaintenanceCostYTD decimal.Decimal
	UtilizationRate    decimal.Decimal // porcentaje 0..100, pre-calculado
	TotalHours         decimal.Decimal
	LastService        *time.Time
	NextService        *time.Time
	PurchaseDate       *time.Time
	Notes              string
	Tags               []string
	CreatedBy          string
	CreatedByID        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MaintenanceOverdue indica si el próximo servicio está vencido respecto a now.
func (e *Equipment) MaintenanceOverdue(now time.Time) bool {
	return e.NextService != nil && e.NextService.Before(now)
}

// Tipos de movimiento en el historial de un equipo.
const (
	EquipmentTxAssignment  = "assignment"
	EquipmentTxReturn      = "return"
	EquipmentTxMaintenance = "maintenance"
	EquipmentTxInspection  = "inspection"
)

// EquipmentTransaction historial append-only de un equipo (asignaciones,
// devoluciones, mantenimientos).
type EquipmentTransaction struct {
	ID          string
	EquipmentID string
	Type        string
	Description string
	Cost        decimal.Decimal
	ProjectName string
	DoneBy      string
	DoneAt      time.Time
	CreatedAt   time.Time
}
