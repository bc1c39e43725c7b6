package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados derivados de stock. No se persisten: se calculan al momento de leer
// a partir de CurrentStock, MinStockLevel e IsActive.
const (
	StockStatusInStock      = "in-stock"
	StockStatusLowStock     = "low-stock"
	StockStatusOutOfStock   = "out-of-stock"
	StockStatusDiscontinued = "discontinued"
)

// Product representa un material o insumo de obra (SKU único).
// CurrentStock y MAUC se mutan únicamente vía transacciones de stock;
// el resto de campos se edita por el CRUD de productos.
type Product struct {
	ID             string
	SKU            string // código único
	Name           string
	Description    string
	CategoryID     string
	LocationID     string
	UnitOfMeasure  string
	CurrentStock   decimal.Decimal // invariante: >= 0
	MinStockLevel  decimal.Decimal
	MaxStockLevel  decimal.Decimal // advisory: se valida al ingresar, no es tope duro
	MAUC           decimal.Decimal // costo unitario promedio móvil
	Supplier       string
	Location       string
	ImageURL       string
	IsActive       bool
	CreatedBy      string
	CreatedByID    string
	CreatedByEmail string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TotalValue valor del inventario del producto (stock * MAUC).
func (p *Product) TotalValue() decimal.Decimal {
	return p.CurrentStock.Mul(p.MAUC)
}
