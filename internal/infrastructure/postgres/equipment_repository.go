package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)
var _ repository.EquipmentTransactionRepository = (*EquipmentTransactionRepo)(nil)

const equipmentColumns = `id, name, type, category, model, manufacturer, serial_number, status,
	condition, location, assigned_to, project, purchase_price, current_value,
	maintenance_cost_ytd, utilization_rate, total_hours, last_service, next_service,
	purchase_date, notes, tags, created_by, created_by_id, created_at, updated_at`

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

// Create persiste un equipo.
func (r *EquipmentRepo) Create(eq *entity.Equipment) error {
	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, eq.Name, eq.Type, eq.Category, eq.Model, eq.Manufacturer, eq.SerialNumber,
		eq.Status, eq.Condition, eq.Location, eq.AssignedTo, eq.Project,
		eq.PurchasePrice, eq.CurrentValue, eq.MaintenanceCostYTD, eq.UtilizationRate,
		eq.TotalHours, eq.LastService, eq.NextService, eq.PurchaseDate,
		eq.Notes, eq.Tags, eq.CreatedBy, eq.CreatedByID, eq.CreatedAt, eq.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	eq, err := scanEquipment(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return eq, nil
}

// Update actualiza un equipo existente.
func (r *EquipmentRepo) Update(eq *entity.Equipment) error {
	query := `
		UPDATE equipment SET name = $2, category = $3, status = $4, condition = $5, location = $6,
			assigned_to = $7, project = $8, current_value = $9, maintenance_cost_ytd = $10,
			utilization_rate = $11, total_hours = $12, last_service = $13, next_service = $14,
			notes = $15, tags = $16, updated_at = $17
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		eq.ID, eq.Name, eq.Category, eq.Status, eq.Condition, eq.Location,
		eq.AssignedTo, eq.Project, eq.CurrentValue, eq.MaintenanceCostYTD,
		eq.UtilizationRate, eq.TotalHours, eq.LastService, eq.NextService,
		eq.Notes, eq.Tags, eq.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// List lista todos los equipos.
func (r *EquipmentRepo) List() ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, eq)
	}
	return list, rows.Err()
}

func scanEquipment(row rowScanner) (*entity.Equipment, error) {
	var eq entity.Equipment
	err := row.Scan(
		&eq.ID, &eq.Name, &eq.Type, &eq.Category, &eq.Model, &eq.Manufacturer, &eq.SerialNumber,
		&eq.Status, &eq.Condition, &eq.Location, &eq.AssignedTo, &eq.Project,
		&eq.PurchasePrice, &eq.CurrentValue, &eq.MaintenanceCostYTD, &eq.UtilizationRate,
		&eq.TotalHours, &eq.LastService, &eq.NextService, &eq.PurchaseDate,
		&eq.Notes, &eq.Tags, &eq.CreatedBy, &eq.CreatedByID, &eq.CreatedAt, &eq.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// EquipmentTransactionRepo historial append-only de equipos sobre PostgreSQL.
type EquipmentTransactionRepo struct {
	q Querier
}

// NewEquipmentTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentTransactionRepository(q Querier) *EquipmentTransactionRepo {
	return &EquipmentTransactionRepo{q: q}
}

// Create persiste un movimiento del historial de un equipo.
func (r *EquipmentTransactionRepo) Create(tx *entity.EquipmentTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	query := `
		INSERT INTO equipment_transactions (id, equipment_id, type, description, cost, project_name, done_by, done_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.EquipmentID, tx.Type, tx.Description, tx.Cost, tx.ProjectName,
		tx.DoneBy, tx.DoneAt, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create equipment transaction: %w", err)
	}
	return nil
}

// ListByEquipment historial de un equipo, más reciente primero.
func (r *EquipmentTransactionRepo) ListByEquipment(equipmentID string, limit int) ([]*entity.EquipmentTransaction, error) {
	query := `
		SELECT id, equipment_id, type, description, cost, project_name, done_by, done_at, created_at
		FROM equipment_transactions WHERE equipment_id = $1 ORDER BY done_at DESC, created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, equipmentID, limit)
	if err != nil {
		return nil, fmt.Errorf("list equipment transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.EquipmentTransaction
	for rows.Next() {
		var tx entity.EquipmentTransaction
		if err := rows.Scan(&tx.ID, &tx.EquipmentID, &tx.Type, &tx.Description, &tx.Cost,
			&tx.ProjectName, &tx.DoneBy, &tx.DoneAt, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}
