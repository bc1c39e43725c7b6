package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateVendorRequest entrada para registrar un proveedor.
type CreateVendorRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Type          string          `json:"type" validate:"required,oneof=supplier contractor consultant other"`
	Category      string          `json:"category"`
	Status        string          `json:"status"`
	Rating        decimal.Decimal `json:"rating"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	ContactPerson string          `json:"contact_person"`
	Notes         string          `json:"notes"`
	Tags          []string        `json:"tags"`
}

// UpdateVendorRequest actualización parcial (PATCH) de un proveedor.
type UpdateVendorRequest struct {
	Name               *string          `json:"name"`
	Type               *string          `json:"type"`
	Category           *string          `json:"category"`
	Status             *string          `json:"status"`
	Rating             *decimal.Decimal `json:"rating"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	Address            *string          `json:"address"`
	ContactPerson      *string          `json:"contact_person"`
	TotalOrders        *int             `json:"total_orders"`
	TotalValue         *decimal.Decimal `json:"total_value"`
	AvgDeliveryTime    *decimal.Decimal `json:"avg_delivery_time"`
	OnTimeDeliveryRate *decimal.Decimal `json:"on_time_delivery_rate"`
	QualityRating      *decimal.Decimal `json:"quality_rating"`
	Notes              *string          `json:"notes"`
	Tags               []string         `json:"tags"`
}

// VendorResponse salida de un proveedor.
type VendorResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Type               string          `json:"type"`
	Category           string          `json:"category,omitempty"`
	Status             string          `json:"status"`
	Rating             decimal.Decimal `json:"rating"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	ContactPerson      string          `json:"contact_person,omitempty"`
	TotalOrders        int             `json:"total_orders"`
	TotalValue         decimal.Decimal `json:"total_value"`
	AvgDeliveryTime    decimal.Decimal `json:"avg_delivery_time"`
	OnTimeDeliveryRate decimal.Decimal `json:"on_time_delivery_rate"`
	QualityRating      decimal.Decimal `json:"quality_rating"`
	Notes              string          `json:"notes,omitempty"`
	Tags               []string        `json:"tags,omitempty"`
	CreatedBy          string          `json:"created_by"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// VendorStats agregados de proveedores para el dashboard.
type VendorStats struct {
	Total           int             `json:"total"`
	Active          int             `json:"active"`
	Inactive        int             `json:"inactive"`
	Pending         int             `json:"pending"`
	Blacklisted     int             `json:"blacklisted"`
	TotalValue      decimal.Decimal `json:"total_value"`
	AvgRating       decimal.Decimal `json:"avg_rating"`
	AvgOnTimeRate   decimal.Decimal `json:"avg_on_time_rate"`
	SupplierCount   int             `json:"supplier_count"`
	ContractorCount int             `json:"contractor_count"`
	ConsultantCount int             `json:"consultant_count"`
}

// VendorListResponse listado filtrado más agregados.
type VendorListResponse struct {
	Vendors []VendorResponse `json:"vendors"`
	Stats   VendorStats      `json:"stats"`
}
