package inventory

import (
	"context"

	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// TxRunner ejecuta un callback dentro de una transacción de base de datos,
// entregando repositorios atados a esa transacción. Commit si fn devuelve
// nil, Rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error) error
}
