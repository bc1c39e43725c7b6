package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	domaininv "github.com/jhoicas/ObraCore-api/internal/domain/inventory"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// CreateProductUseCase da de alta productos. Cuando hay stock inicial, el
// producto y su asiento de apertura (IN) se crean en la misma transacción de
// base de datos: o quedan los dos o no queda ninguno.
type CreateProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewCreateProductUseCase construye el caso de uso.
func NewCreateProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// CreateProductInput entrada para el alta de producto. InitialStock cero
// significa alta sin movimiento de apertura.
type CreateProductInput struct {
	SKU             string
	Name            string
	Description     string
	CategoryID      string
	LocationID      string
	UnitOfMeasure   string
	MinStockLevel   decimal.Decimal
	MaxStockLevel   decimal.Decimal
	MAUC            decimal.Decimal
	Supplier        string
	Location        string
	ImageURL        string
	IsActive        bool
	InitialStock    decimal.Decimal
	InitialUnitCost *decimal.Decimal
}

// Create valida y persiste el producto; si hay stock inicial registra además
// el asiento de apertura en la misma transacción.
func (uc *CreateProductUseCase) Create(ctx context.Context, actor entity.Actor, input CreateProductInput) (*entity.Product, error) {
	input.SKU = strings.TrimSpace(input.SKU)
	input.Name = strings.TrimSpace(input.Name)
	if input.SKU == "" || input.Name == "" || input.UnitOfMeasure == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.MinStockLevel.LessThan(decimal.Zero) || input.InitialStock.LessThan(decimal.Zero) || input.MAUC.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	// MaxStockLevel es advisory pero tiene que superar al mínimo si se informa.
	if input.MaxStockLevel.GreaterThan(decimal.Zero) && !input.MaxStockLevel.GreaterThan(input.MinStockLevel) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.productRepo.GetBySKU(input.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		SKU:            input.SKU,
		Name:           input.Name,
		Description:    input.Description,
		CategoryID:     input.CategoryID,
		LocationID:     input.LocationID,
		UnitOfMeasure:  input.UnitOfMeasure,
		CurrentStock:   decimal.Zero,
		MinStockLevel:  input.MinStockLevel,
		MaxStockLevel:  input.MaxStockLevel,
		MAUC:           input.MAUC,
		Supplier:       input.Supplier,
		Location:       input.Location,
		ImageURL:       input.ImageURL,
		IsActive:       input.IsActive,
		CreatedBy:      actor.Name,
		CreatedByID:    actor.ID,
		CreatedByEmail: actor.Email,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if !input.InitialStock.GreaterThan(decimal.Zero) {
			return nil
		}

		unitCost := product.MAUC
		if input.InitialUnitCost != nil {
			unitCost = *input.InitialUnitCost
		}
		newMAUC := domaininv.CostCalculator(decimal.Zero, product.MAUC, input.InitialStock, unitCost)

		opening := &entity.StockTransaction{
			ID:              uuid.New().String(),
			ProductID:       product.ID,
			TransactionType: entity.TransactionTypeIN,
			Quantity:        input.InitialStock,
			UnitCost:        unitCost,
			TotalValue:      input.InitialStock.Mul(unitCost),
			Reason:          "stock inicial",
			DoneBy:          actor.Name,
			DoneAt:          now,
			CreatedAt:       now,
		}
		if err := txRepo.Create(opening); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(product.ID, input.InitialStock, newMAUC); err != nil {
			return err
		}
		product.CurrentStock = input.InitialStock
		product.MAUC = newMAUC
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}
