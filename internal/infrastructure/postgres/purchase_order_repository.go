package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

const purchaseOrderColumns = `id, order_number, supplier, project, status, priority, order_date,
	expected_delivery, actual_delivery, total_amount, paid_amount, approved_by, notes,
	created_by, created_by_id, created_at, updated_at`

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL
// (usable con pool o tx). Las líneas viven en purchase_order_items y se
// persisten junto con la orden.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

// Create persiste la orden junto con sus líneas.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.OrderNumber, po.Supplier, po.Project, po.Status, po.Priority, po.OrderDate,
		po.ExpectedDelivery, po.ActualDelivery, po.TotalAmount, po.PaidAmount, po.ApprovedBy,
		po.Notes, po.CreatedBy, po.CreatedByID, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, item := range po.Items {
		if err := r.insertItem(&item); err != nil {
			return err
		}
	}
	return nil
}

func (r *PurchaseOrderRepo) insertItem(item *entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_order_items (id, order_id, name, quantity, unit, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.Name, item.Quantity, item.Unit, item.UnitPrice, item.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order item: %w", err)
	}
	return nil
}

// GetByID obtiene una orden con sus líneas cargadas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	po, err := scanPurchaseOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	items, err := r.listItems(id)
	if err != nil {
		return nil, err
	}
	po.Items = items
	return po, nil
}

// Update actualiza el encabezado de la orden. Las líneas no se editan.
func (r *PurchaseOrderRepo) Update(po *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $2, priority = $3, expected_delivery = $4,
			actual_delivery = $5, paid_amount = $6, approved_by = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		po.ID, po.Status, po.Priority, po.ExpectedDelivery, po.ActualDelivery,
		po.PaidAmount, po.ApprovedBy, po.Notes, po.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	return nil
}

// List lista todas las órdenes con sus líneas, más reciente primero.
func (r *PurchaseOrderRepo) List() ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders ORDER BY order_date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, po := range list {
		items, err := r.listItems(po.ID)
		if err != nil {
			return nil, err
		}
		po.Items = items
	}
	return list, nil
}

// LastOrderNumber último número de orden del año indicado ("" si no hay).
func (r *PurchaseOrderRepo) LastOrderNumber(year int) (string, error) {
	var orderNumber string
	prefix := fmt.Sprintf("PO-%d-%%", year)
	err := r.q.QueryRow(context.Background(),
		`SELECT order_number FROM purchase_orders WHERE order_number LIKE $1 ORDER BY order_number DESC LIMIT 1`,
		prefix,
	).Scan(&orderNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last order number: %w", err)
	}
	return orderNumber, nil
}

func (r *PurchaseOrderRepo) listItems(orderID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, order_id, name, quantity, unit, unit_price, total_price
		FROM purchase_order_items WHERE order_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseOrderItem
	for rows.Next() {
		var item entity.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanPurchaseOrder(row rowScanner) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.OrderNumber, &po.Supplier, &po.Project, &po.Status, &po.Priority,
		&po.OrderDate, &po.ExpectedDelivery, &po.ActualDelivery, &po.TotalAmount, &po.PaidAmount,
		&po.ApprovedBy, &po.Notes, &po.CreatedBy, &po.CreatedByID, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &po, nil
}
