package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostTransactionRequest entrada para registrar un movimiento de stock.
// UnitCost es opcional: si no se informa, el asiento toma el MAUC vigente
// del producto para que TotalValue quede bien calculado.
type PostTransactionRequest struct {
	ProductID       string           `json:"product_id" validate:"required"`
	TransactionType string           `json:"transaction_type" validate:"required,oneof=IN OUT RETURN"`
	Quantity        decimal.Decimal  `json:"quantity" validate:"required"`
	UnitCost        *decimal.Decimal `json:"unit_cost"`
	Reason          string           `json:"reason"`
	ProjectName     string           `json:"project_name"`
}

// TransactionResponse asiento del libro de movimientos.
type TransactionResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Reason          string          `json:"reason,omitempty"`
	ProjectName     string          `json:"project_name,omitempty"`
	DoneBy          string          `json:"done_by"`
	DoneAt          time.Time       `json:"done_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PostTransactionResponse resultado de registrar un movimiento: el asiento
// creado más el estado resultante del producto.
type PostTransactionResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	NewStock    decimal.Decimal     `json:"new_stock"`
	NewMAUC     decimal.Decimal     `json:"new_mauc"`
}

// TransactionListResponse historial ordenado (más reciente primero).
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionTypeSummary acumulado por tipo de movimiento.
type TransactionTypeSummary struct {
	Quantity   decimal.Decimal `json:"quantity"`
	TotalValue decimal.Decimal `json:"total_value"`
	Count      int             `json:"count"`
}

// TransactionSummaryResponse resumen de los últimos 7 días por tipo.
type TransactionSummaryResponse struct {
	Period  string                            `json:"period"`
	Summary map[string]TransactionTypeSummary `json:"summary"`
}
