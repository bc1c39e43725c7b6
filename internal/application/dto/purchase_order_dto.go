package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest línea de una orden de compra. TotalPrice se
// calcula en el servidor (Quantity * UnitPrice).
type PurchaseOrderItemRequest struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
// OrderNumber y TotalAmount se generan en el servidor.
type CreatePurchaseOrderRequest struct {
	Supplier         string                     `json:"supplier" validate:"required"`
	Project          string                     `json:"project"`
	Priority         string                     `json:"priority"`
	ExpectedDelivery *time.Time                 `json:"expected_delivery"`
	Notes            string                     `json:"notes"`
	Items            []PurchaseOrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdatePurchaseOrderRequest actualización parcial de una orden (estado,
// pagos, fechas). Las líneas no se editan después de creada.
type UpdatePurchaseOrderRequest struct {
	Status           *string          `json:"status"`
	Priority         *string          `json:"priority"`
	ExpectedDelivery *time.Time       `json:"expected_delivery"`
	ActualDelivery   *time.Time       `json:"actual_delivery"`
	PaidAmount       *decimal.Decimal `json:"paid_amount"`
	ApprovedBy       *string          `json:"approved_by"`
	Notes            *string          `json:"notes"`
}

// PurchaseOrderItemResponse línea de una orden.
type PurchaseOrderItemResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID               string                      `json:"id"`
	OrderNumber      string                      `json:"order_number"`
	Supplier         string                      `json:"supplier"`
	Project          string                      `json:"project,omitempty"`
	Status           string                      `json:"status"`
	Priority         string                      `json:"priority"`
	OrderDate        time.Time                   `json:"order_date"`
	ExpectedDelivery *time.Time                  `json:"expected_delivery,omitempty"`
	ActualDelivery   *time.Time                  `json:"actual_delivery,omitempty"`
	TotalAmount      decimal.Decimal             `json:"total_amount"`
	PaidAmount       decimal.Decimal             `json:"paid_amount"`
	ApprovedBy       string                      `json:"approved_by,omitempty"`
	Notes            string                      `json:"notes,omitempty"`
	Items            []PurchaseOrderItemResponse `json:"items"`
	CreatedBy        string                      `json:"created_by"`
	CreatedAt        time.Time                   `json:"created_at"`
	UpdatedAt        time.Time                   `json:"updated_at"`
}

// PurchaseOrderStats agregados de órdenes de compra.
type PurchaseOrderStats struct {
	Total          int             `json:"total"`
	Draft          int             `json:"draft"`
	Pending        int             `json:"pending"`
	Approved       int             `json:"approved"`
	Ordered        int             `json:"ordered"`
	Received       int             `json:"received"`
	Cancelled      int             `json:"cancelled"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaidAmount     decimal.Decimal `json:"paid_amount"`
	OutstandingAmt decimal.Decimal `json:"outstanding_amount"`
	AvgOrderValue  decimal.Decimal `json:"avg_order_value"`
	OnTimeRate     decimal.Decimal `json:"on_time_rate"`
}

// PurchaseOrderListResponse listado filtrado más agregados.
type PurchaseOrderListResponse struct {
	Orders []PurchaseOrderResponse `json:"orders"`
	Stats  PurchaseOrderStats      `json:"stats"`
}
