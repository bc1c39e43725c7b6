package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

const stockTxColumns = `id, product_id, transaction_type, quantity, unit_cost, total_value,
	reason, project_name, done_by, done_at, created_at`

// StockTransactionRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: no hay UPDATE ni DELETE.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste un asiento del libro.
func (r *StockTransactionRepo) Create(tx *entity.StockTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (` + stockTxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.TransactionType, tx.Quantity, tx.UnitCost, tx.TotalValue,
		tx.Reason, tx.ProjectName, tx.DoneBy, tx.DoneAt, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock transaction: %w", err)
	}
	return nil
}

// ListByProduct historial de un producto, más reciente primero.
func (r *StockTransactionRepo) ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + stockTxColumns + `
		FROM stock_transactions WHERE product_id = $1 ORDER BY done_at DESC, created_at DESC LIMIT $2`
	return r.list(query, productID, limit)
}

// List últimos movimientos de todos los productos, más reciente primero.
func (r *StockTransactionRepo) List(limit int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + stockTxColumns + `
		FROM stock_transactions ORDER BY done_at DESC, created_at DESC LIMIT $1`
	return r.list(query, limit)
}

// ListSince movimientos con done_at >= since.
func (r *StockTransactionRepo) ListSince(since time.Time) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + stockTxColumns + `
		FROM stock_transactions WHERE done_at >= $1 ORDER BY done_at DESC`
	return r.list(query, since)
}

// CountByProduct cantidad de asientos que referencian un producto.
func (r *StockTransactionRepo) CountByProduct(productID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_transactions WHERE product_id = $1`, productID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock transactions: %w", err)
	}
	return count, nil
}

func (r *StockTransactionRepo) list(query string, args ...any) ([]*entity.StockTransaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(&tx.ID, &tx.ProductID, &tx.TransactionType, &tx.Quantity, &tx.UnitCost,
			&tx.TotalValue, &tx.Reason, &tx.ProjectName, &tx.DoneBy, &tx.DoneAt, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
