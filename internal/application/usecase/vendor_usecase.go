package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// VendorUseCase alta, edición y consulta de proveedores.
type VendorUseCase struct {
	repo repository.VendorRepository
}

// NewVendorUseCase construye el caso de uso.
func NewVendorUseCase(repo repository.VendorRepository) *VendorUseCase {
	return &VendorUseCase{repo: repo}
}

var validVendorTypes = map[string]bool{
	entity.VendorTypeSupplier:   true,
	entity.VendorTypeContractor: true,
	entity.VendorTypeConsultant: true,
	entity.VendorTypeOther:      true,
}

var validVendorStatuses = map[string]bool{
	entity.VendorStatusActive:      true,
	entity.VendorStatusInactive:    true,
	entity.VendorStatusPending:     true,
	entity.VendorStatusBlacklisted: true,
}

// Create registra un proveedor. Los nuevos entran en estado pending salvo
// que se indique otro estado válido.
func (uc *VendorUseCase) Create(actor entity.Actor, in dto.CreateVendorRequest) (*dto.VendorResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !validVendorTypes[in.Type] {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.VendorStatusPending
	}
	if !validVendorStatuses[status] {
		return nil, domain.ErrInvalidInput
	}
	if in.Rating.LessThan(decimal.Zero) || in.Rating.GreaterThan(decimal.NewFromInt(5)) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:            uuid.New().String(),
		Name:          name,
		Type:          in.Type,
		Category:      strings.TrimSpace(in.Category),
		Status:        status,
		Rating:        in.Rating,
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		ContactPerson: strings.TrimSpace(in.ContactPerson),
		Notes:         in.Notes,
		Tags:          in.Tags,
		CreatedBy:     actor.Name,
		CreatedByID:   actor.ID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// GetByID obtiene un proveedor.
func (uc *VendorUseCase) GetByID(id string) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	return toVendorResponse(vendor), nil
}

// Update aplica una edición parcial, incluidas las métricas de desempeño.
func (uc *VendorUseCase) Update(id string, in dto.UpdateVendorRequest) (*dto.VendorResponse, error) {
	vendor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		vendor.Name = strings.TrimSpace(*in.Name)
	}
	if in.Type != nil {
		if !validVendorTypes[*in.Type] {
			return nil, domain.ErrInvalidInput
		}
		vendor.Type = *in.Type
	}
	if in.Status != nil {
		if !validVendorStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		vendor.Status = *in.Status
	}
	if in.Rating != nil {
		if in.Rating.LessThan(decimal.Zero) || in.Rating.GreaterThan(decimal.NewFromInt(5)) {
			return nil, domain.ErrInvalidInput
		}
		vendor.Rating = *in.Rating
	}
	if in.Category != nil {
		vendor.Category = *in.Category
	}
	if in.Email != nil {
		vendor.Email = *in.Email
	}
	if in.Phone != nil {
		vendor.Phone = *in.Phone
	}
	if in.Address != nil {
		vendor.Address = *in.Address
	}
	if in.ContactPerson != nil {
		vendor.ContactPerson = *in.ContactPerson
	}
	if in.TotalOrders != nil {
		vendor.TotalOrders = *in.TotalOrders
	}
	if in.TotalValue != nil {
		vendor.TotalValue = *in.TotalValue
	}
	if in.AvgDeliveryTime != nil {
		vendor.AvgDeliveryTime = *in.AvgDeliveryTime
	}
	if in.OnTimeDeliveryRate != nil {
		vendor.OnTimeDeliveryRate = *in.OnTimeDeliveryRate
	}
	if in.QualityRating != nil {
		vendor.QualityRating = *in.QualityRating
	}
	if in.Notes != nil {
		vendor.Notes = *in.Notes
	}
	if in.Tags != nil {
		vendor.Tags = in.Tags
	}
	vendor.UpdatedAt = time.Now()
	if err := uc.repo.Update(vendor); err != nil {
		return nil, err
	}
	return toVendorResponse(vendor), nil
}

// List trae los proveedores filtrados con sus agregados.
func (uc *VendorUseCase) List(f filter.VendorFilter) (*dto.VendorListResponse, error) {
	vendors, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(vendors, f.Matches)
	resp := &dto.VendorListResponse{
		Vendors: make([]dto.VendorResponse, 0, len(filtered)),
		Stats:   stats.ComputeVendorStats(filtered),
	}
	for _, v := range filtered {
		resp.Vendors = append(resp.Vendors, *toVendorResponse(v))
	}
	return resp, nil
}

func toVendorResponse(v *entity.Vendor) *dto.VendorResponse {
	return &dto.VendorResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Type:               v.Type,
		Category:           v.Category,
		Status:             v.Status,
		Rating:             v.Rating,
		Email:              v.Email,
		Phone:              v.Phone,
		Address:            v.Address,
		ContactPerson:      v.ContactPerson,
		TotalOrders:        v.TotalOrders,
		TotalValue:         v.TotalValue,
		AvgDeliveryTime:    v.AvgDeliveryTime,
		OnTimeDeliveryRate: v.OnTimeDeliveryRate,
		QualityRating:      v.QualityRating,
		Notes:              v.Notes,
		Tags:               v.Tags,
		CreatedBy:          v.CreatedBy,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}
