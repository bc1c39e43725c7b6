package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de proveedor.
const (
	VendorTypeSupplier   = "supplier"
	VendorTypeContractor = "contractor"
	VendorTypeConsultant = "consultant"
	VendorTypeOther      = "other"
)

// Estados de proveedor.
const (
	VendorStatusActive      = "active"
	VendorStatusInactive    = "inactive"
	VendorStatusPending     = "pending"
	VendorStatusBlacklisted = "blacklisted"
)

// Vendor representa un proveedor, contratista o consultor.
// Las métricas de desempeño (TotalOrders, OnTimeDeliveryRate, etc.) se
// almacenan pre-calculadas por proveedor; los agregados del dashboard las
// promedian, no las recalculan desde eventos.
type Vendor struct {
	ID                 string
	Name               string
	Type               string
	Category           string
	Status             string
	Rating             decimal.Decimal // 0..5
	Email              string
	Phone              string
	Address            string
	ContactPerson      string
	TotalOrders        int
	TotalValue         decimal.Decimal
	AvgDeliveryTime    decimal.Decimal // días
	OnTimeDeliveryRate decimal.Decimal // porcentaje 0..100
	QualityRating      decimal.Decimal // 0..5
	Notes              string
	Tags               []string
	CreatedBy          string
	CreatedByID        string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
