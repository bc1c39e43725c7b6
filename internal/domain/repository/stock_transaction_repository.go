package repository

import (
	"time"

	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
)

// StockTransactionRepository puerto del libro de movimientos de stock.
// El libro es append-only: solo Create y lecturas.
type StockTransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	// ListByProduct historial de un producto, más reciente primero.
	ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error)
	List(limit int) ([]*entity.StockTransaction, error)
	// ListSince movimientos con DoneAt >= since (para el resumen del dashboard).
	ListSince(since time.Time) ([]*entity.StockTransaction, error)
	// CountByProduct cantidad de asientos que referencian un producto.
	// Se usa para impedir borrar productos con historial.
	CountByProduct(productID string) (int, error)
}
