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

var _ repository.VendorRepository = (*VendorRepo)(nil)

const vendorColumns = `id, name, type, category, status, rating, email, phone, address,
	contact_person, total_orders, total_value, avg_delivery_time, on_time_delivery_rate,
	quality_rating, notes, tags, created_by, created_by_id, created_at, updated_at`

// VendorRepo implementación del puerto VendorRepository sobre PostgreSQL (usable con pool o tx).
type VendorRepo struct {
	q Querier
}

// NewVendorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persiste un proveedor.
func (r *VendorRepo) Create(vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Type, vendor.Category, vendor.Status, vendor.Rating,
		vendor.Email, vendor.Phone, vendor.Address, vendor.ContactPerson,
		vendor.TotalOrders, vendor.TotalValue, vendor.AvgDeliveryTime, vendor.OnTimeDeliveryRate,
		vendor.QualityRating, vendor.Notes, vendor.Tags,
		vendor.CreatedBy, vendor.CreatedByID, vendor.CreatedAt, vendor.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *VendorRepo) GetByID(id string) (*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE id = $1`
	v, err := scanVendor(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return v, nil
}

// Update actualiza un proveedor existente.
func (r *VendorRepo) Update(vendor *entity.Vendor) error {
	query := `
		UPDATE vendors SET name = $2, type = $3, category = $4, status = $5, rating = $6,
			email = $7, phone = $8, address = $9, contact_person = $10, total_orders = $11,
			total_value = $12, avg_delivery_time = $13, on_time_delivery_rate = $14,
			quality_rating = $15, notes = $16, tags = $17, updated_at = $18
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		vendor.ID, vendor.Name, vendor.Type, vendor.Category, vendor.Status, vendor.Rating,
		vendor.Email, vendor.Phone, vendor.Address, vendor.ContactPerson, vendor.TotalOrders,
		vendor.TotalValue, vendor.AvgDeliveryTime, vendor.OnTimeDeliveryRate,
		vendor.QualityRating, vendor.Notes, vendor.Tags, vendor.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// List lista todos los proveedores.
func (r *VendorRepo) List() ([]*entity.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vendor
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func scanVendor(row rowScanner) (*entity.Vendor, error) {
	var v entity.Vendor
	err := row.Scan(
		&v.ID, &v.Name, &v.Type, &v.Category, &v.Status, &v.Rating, &v.Email, &v.Phone,
		&v.Address, &v.ContactPerson, &v.TotalOrders, &v.TotalValue, &v.AvgDeliveryTime,
		&v.OnTimeDeliveryRate, &v.QualityRating, &v.Notes, &v.Tags,
		&v.CreatedBy, &v.CreatedByID, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
