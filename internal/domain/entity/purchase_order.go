package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de orden de compra.
const (
	POStatusDraft     = "draft"
	POStatusPending   = "pending"
	POStatusApproved  = "approved"
	POStatusOrdered   = "ordered"
	POStatusReceived  = "received"
	POStatusCancelled = "cancelled"
)

// PurchaseOrder representa una orden de compra con sus líneas.
// OrderNumber se genera secuencialmente por año (PO-2026-001, ...).
type PurchaseOrder struct {
	ID               string
	OrderNumber      string
	Supplier         string
	Project          string
	Status           string
	Priority         string
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	ActualDelivery   *time.Time
	TotalAmount      decimal.Decimal
	PaidAmount       decimal.Decimal
	ApprovedBy       string
	Notes            string
	Items            []PurchaseOrderItem
	CreatedBy        string
	CreatedByID      string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// PurchaseOrderItem línea de una orden de compra.
type PurchaseOrderItem struct {
	ID         string
	OrderID    string
	Name       string
	Quantity   decimal.Decimal
	Unit       string
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// DeliveredOnTime indica si la orden llegó dentro de la fecha prometida.
// Solo tiene sentido para órdenes recibidas con ambas fechas informadas.
func (po *PurchaseOrder) DeliveredOnTime() bool {
	if po.ExpectedDelivery == nil || po.ActualDelivery == nil {
		return false
	}
	return !po.ActualDelivery.After(*po.ExpectedDelivery)
}
