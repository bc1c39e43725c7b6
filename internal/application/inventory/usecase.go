// Package inventory contiene los casos de uso que mutan stock: registro de
// movimientos (IN/OUT/RETURN) y alta de producto con entrada inicial. Son los
// únicos caminos que tocan CurrentStock y MAUC.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	domaininv "github.com/jhoicas/ObraCore-api/internal/domain/inventory"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// PostTransactionUseCase registra movimientos de stock de forma transaccional
// con bloqueo de fila (SELECT FOR UPDATE) sobre el producto y Commit/Rollback.
// El bloqueo serializa OUTs concurrentes sobre el mismo producto: la
// verificación de stock y la resta ocurren bajo el mismo lock, por lo que el
// stock nunca queda negativo.
type PostTransactionUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewPostTransactionUseCase construye el caso de uso.
func NewPostTransactionUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *PostTransactionUseCase {
	return &PostTransactionUseCase{txRunner: txRunner, productRepo: productRepo}
}

// PostTransactionInput entrada para registrar un movimiento.
// UnitCost es opcional: nil significa "usar el MAUC vigente del producto"
// para valorizar el asiento. Solo un IN con UnitCost explícito recalcula
// el MAUC.
type PostTransactionInput struct {
	ProductID       string
	TransactionType string
	Quantity        decimal.Decimal
	UnitCost        *decimal.Decimal
	Reason          string
	ProjectName     string
	DoneAt          time.Time // cero = ahora
}

// PostTransactionResult asiento creado más el estado resultante del producto.
type PostTransactionResult struct {
	Transaction *entity.StockTransaction
	NewStock    decimal.Decimal
	NewMAUC     decimal.Decimal
}

// Post valida la entrada, abre la transacción, bloquea la fila del producto
// y aplica el movimiento: inserta el asiento y actualiza stock (y MAUC si
// corresponde) como una sola unidad. Si cualquier paso falla no queda ni el
// asiento ni el cambio de stock.
func (uc *PostTransactionUseCase) Post(ctx context.Context, actor entity.Actor, input PostTransactionInput) (*PostTransactionResult, error) {
	if input.ProductID == "" || !entity.ValidTransactionType(input.TransactionType) {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.UnitCost != nil && input.UnitCost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Existencia fuera de la transacción: corta rápido los IDs inválidos.
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	doneAt := input.DoneAt
	if doneAt.IsZero() {
		doneAt = now
	}

	var result *PostTransactionResult
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.StockTransactionRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloquea la fila del producto; a partir de acá nadie más lee ni
		// escribe su stock hasta el Commit/Rollback.
		locked, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newStock := locked.CurrentStock
		newMAUC := locked.MAUC

		switch input.TransactionType {
		case entity.TransactionTypeOUT:
			if input.Quantity.GreaterThan(locked.CurrentStock) {
				return domain.ErrInsufficientStock
			}
			newStock = locked.CurrentStock.Sub(input.Quantity)
		case entity.TransactionTypeIN:
			newStock = locked.CurrentStock.Add(input.Quantity)
			if input.UnitCost != nil {
				newMAUC = domaininv.CostCalculator(locked.CurrentStock, locked.MAUC, input.Quantity, *input.UnitCost)
			}
		case entity.TransactionTypeRETURN:
			// Las devoluciones suman stock pero no tocan el MAUC.
			newStock = locked.CurrentStock.Add(input.Quantity)
		}

		// Valorización del asiento: costo explícito o MAUC vigente.
		unitCost := locked.MAUC
		if input.UnitCost != nil {
			unitCost = *input.UnitCost
		}

		tx := &entity.StockTransaction{
			ID:              uuid.New().String(),
			ProductID:       input.ProductID,
			TransactionType: input.TransactionType,
			Quantity:        input.Quantity,
			UnitCost:        unitCost,
			TotalValue:      input.Quantity.Mul(unitCost),
			Reason:          input.Reason,
			ProjectName:     input.ProjectName,
			DoneBy:          actor.Name,
			DoneAt:          doneAt,
			CreatedAt:       now,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if err := productRepo.UpdateStock(input.ProductID, newStock, newMAUC); err != nil {
			return err
		}
		result = &PostTransactionResult{Transaction: tx, NewStock: newStock, NewMAUC: newMAUC}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
