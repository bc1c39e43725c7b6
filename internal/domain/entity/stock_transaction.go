package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción de stock.
const (
	TransactionTypeIN     = "IN"     // entrada (compra/recepción)
	TransactionTypeOUT    = "OUT"    // salida a obra
	TransactionTypeRETURN = "RETURN" // devolución desde obra
)

// ValidTransactionType indica si el tipo es uno de los soportados.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeIN || t == TransactionTypeOUT || t == TransactionTypeRETURN
}

// StockTransaction es un asiento inmutable del libro de movimientos de stock.
// Una vez creado nunca se actualiza ni se elimina; es la fuente de verdad
// para reconstruir el historial de un producto.
type StockTransaction struct {
	ID              string
	ProductID       string
	TransactionType string
	Quantity        decimal.Decimal // siempre positiva; el signo lo da el tipo
	UnitCost        decimal.Decimal // si no se informa, se toma el MAUC vigente
	TotalValue      decimal.Decimal // Quantity * UnitCost
	Reason          string
	ProjectName     string
	DoneBy          string
	DoneAt          time.Time
	CreatedAt       time.Time
}
