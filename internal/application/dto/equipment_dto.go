package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEquipmentRequest entrada para registrar un equipo.
type CreateEquipmentRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Type          string          `json:"type" validate:"required"`
	Category      string          `json:"category"`
	Model         string          `json:"model"`
	Manufacturer  string          `json:"manufacturer"`
	SerialNumber  string          `json:"serial_number"`
	Status        string          `json:"status"`
	Condition     string          `json:"condition"`
	Location      string          `json:"location"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	PurchaseDate  *time.Time      `json:"purchase_date"`
	NextService   *time.Time      `json:"next_service"`
	Notes         string          `json:"notes"`
	Tags          []string        `json:"tags"`
}

// UpdateEquipmentRequest actualización parcial (PATCH) de un equipo.
type UpdateEquipmentRequest struct {
	Name               *string          `json:"name"`
	Category           *string          `json:"category"`
	Status             *string          `json:"status"`
	Condition          *string          `json:"condition"`
	Location           *string          `json:"location"`
	AssignedTo         *string          `json:"assigned_to"`
	Project            *string          `json:"project"`
	CurrentValue       *decimal.Decimal `json:"current_value"`
	MaintenanceCostYTD *decimal.Decimal `json:"maintenance_cost_ytd"`
	UtilizationRate    *decimal.Decimal `json:"utilization_rate"`
	TotalHours         *decimal.Decimal `json:"total_hours"`
	LastService        *time.Time       `json:"last_service"`
	NextService        *time.Time       `json:"next_service"`
	Notes              *string          `json:"notes"`
	Tags               []string         `json:"tags"`
}

// EquipmentResponse salida de un equipo.
type EquipmentResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Category           string          `json:"category,omitempty"`
	Model              string          `json:"model,omitempty"`
	Manufacturer       string          `json:"manufacturer,omitempty"`
	SerialNumber       string          `json:"serial_number,omitempty"`
	Status             string          `json:"status"`
	Condition          string          `json:"condition"`
	Location           string          `json:"location,omitempty"`
	AssignedTo         string          `json:"assigned_to,omitempty"`
	Project            string          `json:"project,omitempty"`
	PurchasePrice      decimal.Decimal `json:"purchase_price"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	MaintenanceCostYTD decimal.Decimal `json:"maintenance_cost_ytd"`
	UtilizationRate    decimal.Decimal `json:"utilization_rate"`
	TotalHours         decimal.Decimal `json:"total_hours"`
	LastService        *time.Time      `json:"last_service,omitempty"`
	NextService        *time.Time      `json:"next_service,omitempty"`
	PurchaseDate       *time.Time      `json:"purchase_date,omitempty"`
	MaintenanceOverdue bool            `json:"maintenance_overdue"`
	Notes              string          `json:"notes,omitempty"`
	Tags               []string        `json:"tags,omitempty"`
	CreatedBy          string          `json:"created_by"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// EquipmentStats agregados de equipos para el dashboard.
type EquipmentStats struct {
	Total              int             `json:"total"`
	Available          int             `json:"available"`
	InUse              int             `json:"in_use"`
	Maintenance        int             `json:"maintenance"`
	OutOfService       int             `json:"out_of_service"`
	Retired            int             `json:"retired"`
	TotalValue         decimal.Decimal `json:"total_value"`
	TotalPurchaseValue decimal.Decimal `json:"total_purchase_value"`
	AvgUtilization     decimal.Decimal `json:"avg_utilization"`
	MaintenanceOverdue int             `json:"maintenance_overdue"`
	MaintenanceCost    decimal.Decimal `json:"maintenance_cost"`
	HeavyMachinery     int             `json:"heavy_machinery"`
	Vehicles           int             `json:"vehicles"`
	Tools              int             `json:"tools"`
	SafetyEquipment    int             `json:"safety_equipment"`
}

// EquipmentListResponse listado filtrado más agregados y catálogos.
type EquipmentListResponse struct {
	Equipment  []EquipmentResponse `json:"equipment"`
	Stats      EquipmentStats      `json:"stats"`
	Categories []string            `json:"categories"`
	Locations  []string            `json:"locations"`
}

// CreateEquipmentTransactionRequest alta en el historial de un equipo.
type CreateEquipmentTransactionRequest struct {
	Type        string          `json:"type" validate:"required,oneof=assignment return maintenance inspection"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	ProjectName string          `json:"project_name"`
}

// EquipmentTransactionResponse entrada del historial de un equipo.
type EquipmentTransactionResponse struct {
	ID          string          `json:"id"`
	EquipmentID string          `json:"equipment_id"`
	Type        string          `json:"type"`
	Description string          `json:"description,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	ProjectName string          `json:"project_name,omitempty"`
	DoneBy      string          `json:"done_by"`
	DoneAt      time.Time       `json:"done_at"`
}
