package usecase

import (
	"time"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
	summaryWindow       = 7 * 24 * time.Hour
)

// TransactionUseCase lecturas sobre el libro de movimientos de stock. Las
// escrituras van por inventory.PostTransactionUseCase.
type TransactionUseCase struct {
	txRepo      repository.StockTransactionRepository
	productRepo repository.ProductRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(txRepo repository.StockTransactionRepository, productRepo repository.ProductRepository) *TransactionUseCase {
	return &TransactionUseCase{txRepo: txRepo, productRepo: productRepo}
}

// History devuelve el historial de un producto, más reciente primero.
// limit se acota a [1, 200]; 0 usa el default.
func (uc *TransactionUseCase) History(productID string, limit int) (*dto.TransactionListResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	txs, err := uc.txRepo.ListByProduct(productID, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.TransactionListResponse{Transactions: make([]dto.TransactionResponse, 0, len(txs))}
	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(tx))
	}
	return resp, nil
}

// Summary resume los movimientos de los últimos 7 días agrupados por tipo.
func (uc *TransactionUseCase) Summary() (*dto.TransactionSummaryResponse, error) {
	since := time.Now().Add(-summaryWindow)
	txs, err := uc.txRepo.ListSince(since)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionSummaryResponse{
		Period:  "7d",
		Summary: stats.ComputeTransactionSummary(txs),
	}, nil
}

// ToTransactionResponse mapea un asiento del libro al DTO.
func ToTransactionResponse(tx *entity.StockTransaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              tx.ID,
		ProductID:       tx.ProductID,
		TransactionType: tx.TransactionType,
		Quantity:        tx.Quantity,
		UnitCost:        tx.UnitCost,
		TotalValue:      tx.TotalValue,
		Reason:          tx.Reason,
		ProjectName:     tx.ProjectName,
		DoneBy:          tx.DoneBy,
		DoneAt:          tx.DoneAt,
		CreatedAt:       tx.CreatedAt,
	}
}
