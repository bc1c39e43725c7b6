package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/inventory"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// ProductUseCase lecturas y ediciones de producto. El alta va por
// inventory.CreateProductUseCase; stock y MAUC solo se mueven vía
// transacciones de stock.
type ProductUseCase struct {
	repo         repository.ProductRepository
	txRepo       repository.StockTransactionRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRepo: txRepo, categoryRepo: categoryRepo, locationRepo: locationRepo}
}

// GetByID obtiene un producto con sus derivados (stock_status, total_value).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// List trae la página pedida, aplica el filtro en memoria y calcula los
// agregados sobre el resultado filtrado. Devuelve además los catálogos para
// poblar los selectores de la vista.
func (uc *ProductUseCase) List(f filter.ProductFilter, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(products, f.Matches)

	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *ToProductResponse(p))
	}

	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductListResponse{
		Products: items,
		Stats:    stats.ComputeProductStats(filtered),
		Page:     dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.LookupResponse{ID: c.ID, Name: c.Name})
	}
	for _, l := range locations {
		resp.Locations = append(resp.Locations, dto.LookupResponse{ID: l.ID, Name: l.Name})
	}
	return resp, nil
}

// Update aplica una edición parcial. No toca CurrentStock ni MAUC.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.LocationID != nil {
		product.LocationID = *in.LocationID
	}
	if in.UnitOfMeasure != nil {
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.MaxStockLevel != nil {
		product.MaxStockLevel = *in.MaxStockLevel
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	// El máximo configurado tiene que superar al mínimo (validación de entrada,
	// no constraint de base).
	if product.MaxStockLevel.GreaterThan(decimal.Zero) && !product.MaxStockLevel.GreaterThan(product.MinStockLevel) {
		return nil, domain.ErrInvalidInput
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// Delete elimina un producto solo si el libro de movimientos no lo referencia.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	count, err := uc.txRepo.CountByProduct(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.repo.Delete(id)
}

// ToProductResponse mapea la entidad al DTO calculando los derivados.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Name:           p.Name,
		Description:    p.Description,
		CategoryID:     p.CategoryID,
		LocationID:     p.LocationID,
		UnitOfMeasure:  p.UnitOfMeasure,
		CurrentStock:   p.CurrentStock,
		MinStockLevel:  p.MinStockLevel,
		MaxStockLevel:  p.MaxStockLevel,
		MAUC:           p.MAUC,
		StockStatus:    inventory.StockStatus(p),
		TotalValue:     p.TotalValue(),
		Supplier:       p.Supplier,
		Location:       p.Location,
		ImageURL:       p.ImageURL,
		IsActive:       p.IsActive,
		CreatedBy:      p.CreatedBy,
		CreatedByID:    p.CreatedByID,
		CreatedByEmail: p.CreatedByEmail,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
