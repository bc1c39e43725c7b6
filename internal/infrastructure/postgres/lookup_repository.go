package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)
var _ repository.LocationRepository = (*LocationRepo)(nil)
var _ repository.APIKeyRepository = (*APIKeyRepo)(nil)

// CategoryRepo catálogo de categorías de producto sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// List categorías ordenadas por nombre.
func (r *CategoryRepo) List() ([]*entity.ProductCategory, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM product_categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// LocationRepo catálogo de ubicaciones de inventario sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// List ubicaciones ordenadas por nombre.
func (r *LocationRepo) List() ([]*entity.InventoryLocation, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, created_at FROM inventory_locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryLocation
	for rows.Next() {
		var l entity.InventoryLocation
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// APIKeyRepo llaves de integración sobre PostgreSQL.
type APIKeyRepo struct {
	q Querier
}

// NewAPIKeyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAPIKeyRepository(q Querier) *APIKeyRepo {
	return &APIKeyRepo{q: q}
}

// Create persiste una llave (solo el hash, nunca el valor en claro).
func (r *APIKeyRepo) Create(key *entity.APIKey) error {
	query := `
		INSERT INTO api_keys (id, name, prefix, secret_hash, created_by, created_at, last_used_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		key.ID, key.Name, key.Prefix, key.SecretHash, key.CreatedBy, key.CreatedAt, key.LastUsedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert api key: %w", err)
	}
	return nil
}

// List llaves emitidas, más reciente primero.
func (r *APIKeyRepo) List() ([]*entity.APIKey, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, prefix, secret_hash, created_by, created_at, last_used_at
		 FROM api_keys ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list api keys: %w", err)
	}
	defer rows.Close()
	var list []*entity.APIKey
	for rows.Next() {
		var k entity.APIKey
		if err := rows.Scan(&k.ID, &k.Name, &k.Prefix, &k.SecretHash, &k.CreatedBy,
			&k.CreatedAt, &k.LastUsedAt); err != nil {
			return nil, fmt.Errorf("scan api key: %w", err)
		}
		list = append(list, &k)
	}
	return list, rows.Err()
}
