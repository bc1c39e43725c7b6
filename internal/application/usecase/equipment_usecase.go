package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// EquipmentUseCase gestión de equipos y su historial de movimientos.
type EquipmentUseCase struct {
	repo   repository.EquipmentRepository
	txRepo repository.EquipmentTransactionRepository
}

// NewEquipmentUseCase construye el caso de uso.
func NewEquipmentUseCase(repo repository.EquipmentRepository, txRepo repository.EquipmentTransactionRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo, txRepo: txRepo}
}

var validEquipmentTypes = map[string]bool{
	entity.EquipmentTypeHeavyMachinery:  true,
	entity.EquipmentTypeVehicles:        true,
	entity.EquipmentTypeTools:           true,
	entity.EquipmentTypeSafetyEquipment: true,
	entity.EquipmentTypeOther:           true,
}

var validEquipmentStatuses = map[string]bool{
	entity.EquipmentStatusAvailable:    true,
	entity.EquipmentStatusInUse:        true,
	entity.EquipmentStatusMaintenance:  true,
	entity.EquipmentStatusOutOfService: true,
	entity.EquipmentStatusRetired:      true,
}

var validEquipmentConditions = map[string]bool{
	entity.EquipmentConditionExcellent: true,
	entity.EquipmentConditionGood:      true,
	entity.EquipmentConditionFair:      true,
	entity.EquipmentConditionPoor:      true,
}

var validEquipmentTxTypes = map[string]bool{
	entity.EquipmentTxAssignment:  true,
	entity.EquipmentTxReturn:      true,
	entity.EquipmentTxMaintenance: true,
	entity.EquipmentTxInspection:  true,
}

// Create registra un equipo. Defaults: status available, condition good.
func (uc *EquipmentUseCase) Create(actor entity.Actor, in dto.CreateEquipmentRequest) (*dto.EquipmentResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !validEquipmentTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EquipmentStatusAvailable
	}
	condition := in.Condition
	if condition == "" {
		condition = entity.EquipmentConditionGood
	}
	if !validEquipmentStatuses[status] || !validEquipmentConditions[condition] {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	eq := &entity.Equipment{
		ID:            uuid.New().String(),
		Name:          name,
		Type:          in.Type,
		Category:      strings.TrimSpace(in.Category),
		Model:         strings.TrimSpace(in.Model),
		Manufacturer:  strings.TrimSpace(in.Manufacturer),
		SerialNumber:  strings.TrimSpace(in.SerialNumber),
		Status:        status,
		Condition:     condition,
		Location:      strings.TrimSpace(in.Location),
		PurchasePrice: in.PurchasePrice,
		CurrentValue:  in.CurrentValue,
		PurchaseDate:  in.PurchaseDate,
		NextService:   in.NextService,
		Notes:         in.Notes,
		Tags:          in.Tags,
		CreatedBy:     actor.Name,
		CreatedByID:   actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq, now), nil
}

// GetByID obtiene un equipo.
func (uc *EquipmentUseCase) GetByID(id string) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, nil
	}
	return toEquipmentResponse(eq, time.Now()), nil
}

// Update aplica una edición parcial de un equipo.
func (uc *EquipmentUseCase) Update(id string, in dto.UpdateEquipmentRequest) (*dto.EquipmentResponse, error) {
	eq, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		eq.Name = strings.TrimSpace(*in.Name)
	}
	if in.Status != nil {
		if !validEquipmentStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		eq.Status = *in.Status
	}
	if in.Condition != nil {
		if !validEquipmentConditions[*in.Condition] {
			return nil, domain.ErrInvalidInput
		}
		eq.Condition = *in.Condition
	}
	if in.Category != nil {
		eq.Category = *in.Category
	}
	if in.Location != nil {
		eq.Location = *in.Location
	}
	if in.AssignedTo != nil {
		eq.AssignedTo = *in.AssignedTo
	}
	if in.Project != nil {
		eq.Project = *in.Project
	}
	if in.CurrentValue != nil {
		eq.CurrentValue = *in.CurrentValue
	}
	if in.MaintenanceCostYTD != nil {
		eq.MaintenanceCostYTD = *in.MaintenanceCostYTD
	}
	if in.UtilizationRate != nil {
		eq.UtilizationRate = *in.UtilizationRate
	}
	if in.TotalHours != nil {
		eq.TotalHours = *in.TotalHours
	}
	if in.LastService != nil {
		eq.LastService = in.LastService
	}
	if in.NextService != nil {
		eq.NextService = in.NextService
	}
	if in.Notes != nil {
		eq.Notes = *in.Notes
	}
	if in.Tags != nil {
		eq.Tags = in.Tags
	}
	eq.UpdatedAt = time.Now()
	if err := uc.repo.Update(eq); err != nil {
		return nil, err
	}
	return toEquipmentResponse(eq, eq.UpdatedAt), nil
}

// List trae los equipos filtrados con agregados y catálogos derivados
// (categorías y ubicaciones distintas presentes en la flota).
func (uc *EquipmentUseCase) List(f filter.EquipmentFilter) (*dto.EquipmentListResponse, error) {
	equipment, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	filtered := filter.Apply(equipment, f.Matches)
	resp := &dto.EquipmentListResponse{
		Equipment:  make([]dto.EquipmentResponse, 0, len(filtered)),
		Stats:      stats.ComputeEquipmentStats(filtered, now),
		Categories: distinct(equipment, func(e *entity.Equipment) string { return e.Category }),
		Locations:  distinct(equipment, func(e *entity.Equipment) string { return e.Location }),
	}
	for _, e := range filtered {
		resp.Equipment = append(resp.Equipment, *toEquipmentResponse(e, now))
	}
	return resp, nil
}

// AddTransaction registra un movimiento en el historial del equipo. Un
// mantenimiento además actualiza LastService y acumula el costo del año.
func (uc *EquipmentUseCase) AddTransaction(actor entity.Actor, equipmentID string, in dto.CreateEquipmentTransactionRequest) (*dto.EquipmentTransactionResponse, error) {
	if !validEquipmentTxTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	eq, err := uc.repo.GetByID(equipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	tx := &entity.EquipmentTransaction{
		ID:          uuid.New().String(),
		EquipmentID: equipmentID,
		Type:        in.Type,
		Description: in.Description,
		Cost:        in.Cost,
		ProjectName: in.ProjectName,
		DoneBy:      actor.Name,
		DoneAt:      now,
		CreatedAt:   now,
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, err
	}
	if in.Type == entity.EquipmentTxMaintenance {
		eq.LastService = &now
		eq.MaintenanceCostYTD = eq.MaintenanceCostYTD.Add(in.Cost)
		eq.UpdatedAt = now
		if err := uc.repo.Update(eq); err != nil {
			return nil, err
		}
	}
	return toEquipmentTransactionResponse(tx), nil
}

// History devuelve el historial del equipo, más reciente primero.
func (uc *EquipmentUseCase) History(equipmentID string, limit int) ([]dto.EquipmentTransactionResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	eq, err := uc.repo.GetByID(equipmentID)
	if err != nil {
		return nil, err
	}
	if eq == nil {
		return nil, domain.ErrNotFound
	}
	txs, err := uc.txRepo.ListByEquipment(equipmentID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipmentTransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, *toEquipmentTransactionResponse(tx))
	}
	return out, nil
}

func distinct(equipment []*entity.Equipment, key func(*entity.Equipment) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range equipment {
		k := key(e)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toEquipmentResponse(e *entity.Equipment, now time.Time) *dto.EquipmentResponse {
	return &dto.EquipmentResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Type:               e.Type,
		Category:           e.Category,
		Model:              e.Model,
		Manufacturer:       e.Manufacturer,
		SerialNumber:       e.SerialNumber,
		Status:             e.Status,
		Condition:          e.Condition,
		Location:           e.Location,
		AssignedTo:         e.AssignedTo,
		Project:            e.Project,
		PurchasePrice:      e.PurchasePrice,
		CurrentValue:       e.CurrentValue,
		MaintenanceCostYTD: e.MaintenanceCostYTD,
		UtilizationRate:    e.UtilizationRate,
		TotalHours:         e.TotalHours,
		LastService:        e.LastService,
		NextService:        e.NextService,
		PurchaseDate:       e.PurchaseDate,
		MaintenanceOverdue: e.MaintenanceOverdue(now),
		Notes:              e.Notes,
		Tags:               e.Tags,
		CreatedBy:          e.CreatedBy,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func toEquipmentTransactionResponse(tx *entity.EquipmentTransaction) *dto.EquipmentTransactionResponse {
	return &dto.EquipmentTransactionResponse{
		ID:          tx.ID,
		EquipmentID: tx.EquipmentID,
		Type:        tx.Type,
		Description: tx.Description,
		Cost:        tx.Cost,
		ProjectName: tx.ProjectName,
		DoneBy:      tx.DoneBy,
		DoneAt:      tx.DoneAt,
	}
}
