package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Si InitialStock > 0 se
// registra además la entrada inicial (IN) en la misma transacción de base de
// datos que el alta del producto.
type CreateProductRequest struct {
	SKU             string           `json:"sku" validate:"required,min=1,max=100"`
	Name            string           `json:"name" validate:"required,min=1,max=200"`
	Description     string           `json:"description"`
	CategoryID      string           `json:"category_id"`
	LocationID      string           `json:"location_id"`
	UnitOfMeasure   string           `json:"unit_of_measure" validate:"required"`
	MinStockLevel   decimal.Decimal  `json:"min_stock_level"`
	MaxStockLevel   decimal.Decimal  `json:"max_stock_level"`
	MAUC            decimal.Decimal  `json:"mauc"`
	Supplier        string           `json:"supplier"`
	Location        string           `json:"location"`
	ImageURL        string           `json:"image_url"`
	IsActive        *bool            `json:"is_active"`
	InitialStock    decimal.Decimal  `json:"initial_stock"`
	InitialUnitCost *decimal.Decimal `json:"initial_unit_cost"`
}

// UpdateProductRequest entrada para actualizar un producto. Stock y MAUC no se
// editan por aquí: se mueven únicamente vía transacciones de stock.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	CategoryID    *string          `json:"category_id"`
	LocationID    *string          `json:"location_id"`
	UnitOfMeasure *string          `json:"unit_of_measure"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel *decimal.Decimal `json:"max_stock_level"`
	Supplier      *string          `json:"supplier"`
	Location      *string          `json:"location"`
	ImageURL      *string          `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}

// ProductResponse salida de un producto. StockStatus y TotalValue son
// derivados calculados al momento de leer.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	CategoryID     string          `json:"category_id,omitempty"`
	LocationID     string          `json:"location_id,omitempty"`
	UnitOfMeasure  string          `json:"unit_of_measure"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	MinStockLevel  decimal.Decimal `json:"min_stock_level"`
	MaxStockLevel  decimal.Decimal `json:"max_stock_level"`
	MAUC           decimal.Decimal `json:"mauc"`
	StockStatus    string          `json:"stock_status"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Supplier       string          `json:"supplier,omitempty"`
	Location       string          `json:"location,omitempty"`
	ImageURL       string          `json:"image_url,omitempty"`
	IsActive       bool            `json:"is_active"`
	CreatedBy      string          `json:"created_by"`
	CreatedByID    string          `json:"created_by_id"`
	CreatedByEmail string          `json:"created_by_email,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductStats agregados del inventario para el dashboard.
type ProductStats struct {
	Total      int             `json:"total"`
	InStock    int             `json:"in_stock"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	Inactive   int             `json:"inactive"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// ProductListResponse respuesta de listado para consumo tipo dashboard:
// productos filtrados, agregados y catálogos para poblar los filtros.
type ProductListResponse struct {
	Products   []ProductResponse  `json:"products"`
	Stats      ProductStats       `json:"stats"`
	Categories []LookupResponse   `json:"categories"`
	Locations  []LookupResponse   `json:"locations"`
	Page       PageResponse       `json:"page"`
}

// LookupResponse entrada de catálogo (categoría o ubicación).
type LookupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
