// Package inventory contiene los servicios de dominio del inventario:
// costo promedio móvil (MAUC) y estado derivado de stock.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
)

// CostCalculator implementa la lógica de costo promedio ponderado móvil.
// NuevoMAUC = ((StockActual * MAUCActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
// Caso degenerado StockActual + CantEntrada == 0: el nuevo MAUC es el costo de entrada.
func CostCalculator(stockActual, maucActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return costoEntrada
	}
	num := stockActual.Mul(maucActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// StockStatus calcula el estado derivado de stock de un producto.
// Nunca se persiste: se evalúa al leer para que siempre sea consistente
// con el stock vigente.
func StockStatus(p *entity.Product) string {
	if !p.IsActive {
		return entity.StockStatusDiscontinued
	}
	if p.CurrentStock.IsZero() {
		return entity.StockStatusOutOfStock
	}
	if p.CurrentStock.LessThanOrEqual(p.MinStockLevel) {
		return entity.StockStatusLowStock
	}
	return entity.StockStatusInStock
}
