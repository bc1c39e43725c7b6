package usecase

import (
	"fmt"
	"strconv"
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

// POPDFGenerator genera el documento imprimible de una orden de compra.
type POPDFGenerator interface {
	GeneratePurchaseOrderPDF(po *entity.PurchaseOrder) ([]byte, error)
}

// PurchaseOrderUseCase gestión de órdenes de compra.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
	pdf  POPDFGenerator
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository, pdf POPDFGenerator) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, pdf: pdf}
}

var validPOStatuses = map[string]bool{
	entity.POStatusDraft:     true,
	entity.POStatusPending:   true,
	entity.POStatusApproved:  true,
	entity.POStatusOrdered:   true,
	entity.POStatusReceived:  true,
	entity.POStatusCancelled: true,
}

// nextOrderNumber deriva el siguiente número del año: "" -> PO-2026-001,
// "PO-2026-014" -> PO-2026-015.
func nextOrderNumber(last string, year int) string {
	seq := 0
	prefix := fmt.Sprintf("PO-%d-", year)
	if n, ok := strings.CutPrefix(last, prefix); ok {
		if v, err := strconv.Atoi(n); err == nil {
			seq = v
		}
	}
	return fmt.Sprintf("%s%03d", prefix, seq+1)
}

// Create da de alta una orden en estado pending. El número de orden y los
// totales (por línea y total) se calculan en el servidor; lo que venga en la
// entrada se ignora.
func (uc *PurchaseOrderUseCase) Create(actor entity.Actor, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	supplier := strings.TrimSpace(in.Supplier)
	if supplier == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	if !validPriorities[priority] {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	last, err := uc.repo.LastOrderNumber(now.Year())
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	total := decimal.Zero
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		name := strings.TrimSpace(it.Name)
		if name == "" || !it.Quantity.IsPositive() || it.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lineTotal := it.Quantity.Mul(it.UnitPrice)
		total = total.Add(lineTotal)
		items = append(items, entity.PurchaseOrderItem{
			ID:         uuid.New().String(),
			OrderID:    orderID,
			Name:       name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			UnitPrice:  it.UnitPrice,
			TotalPrice: lineTotal,
		})
	}

	po := &entity.PurchaseOrder{
		ID:               orderID,
		OrderNumber:      nextOrderNumber(last, now.Year()),
		Supplier:         supplier,
		Project:          strings.TrimSpace(in.Project),
		Status:           entity.POStatusPending,
		Priority:         priority,
		OrderDate:        now,
		ExpectedDelivery: in.ExpectedDelivery,
		TotalAmount:      total,
		Notes:            in.Notes,
		Items:            items,
		CreatedBy:        actor.Name,
		CreatedByID:      actor.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(po); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// GetByID obtiene una orden con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(id string) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, nil
	}
	return toPurchaseOrderResponse(po), nil
}

// Update edición parcial de la orden. Al pasar a received sin fecha de
// entrega real, se toma la fecha actual. PaidAmount no puede superar el total.
func (uc *PurchaseOrderUseCase) Update(id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, nil
	}
	if in.Status != nil {
		if !validPOStatuses[*in.Status] {
			return nil, domain.ErrInvalidInput
		}
		po.Status = *in.Status
	}
	if in.Priority != nil {
		if !validPriorities[*in.Priority] {
			return nil, domain.ErrInvalidInput
		}
		po.Priority = *in.Priority
	}
	if in.ExpectedDelivery != nil {
		po.ExpectedDelivery = in.ExpectedDelivery
	}
	if in.ActualDelivery != nil {
		po.ActualDelivery = in.ActualDelivery
	}
	if in.PaidAmount != nil {
		if in.PaidAmount.LessThan(decimal.Zero) || in.PaidAmount.GreaterThan(po.TotalAmount) {
			return nil, domain.ErrInvalidInput
		}
		po.PaidAmount = *in.PaidAmount
	}
	if in.ApprovedBy != nil {
		po.ApprovedBy = *in.ApprovedBy
	}
	if in.Notes != nil {
		po.Notes = *in.Notes
	}
	now := time.Now()
	if po.Status == entity.POStatusReceived && po.ActualDelivery == nil {
		po.ActualDelivery = &now
	}
	po.UpdatedAt = now
	if err := uc.repo.Update(po); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(po), nil
}

// List trae las órdenes filtradas con sus agregados.
func (uc *PurchaseOrderUseCase) List(f filter.PurchaseOrderFilter) (*dto.PurchaseOrderListResponse, error) {
	orders, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	filtered := filter.Apply(orders, f.Matches)
	resp := &dto.PurchaseOrderListResponse{
		Orders: make([]dto.PurchaseOrderResponse, 0, len(filtered)),
		Stats:  stats.ComputePurchaseOrderStats(filtered),
	}
	for _, po := range filtered {
		resp.Orders = append(resp.Orders, *toPurchaseOrderResponse(po))
	}
	return resp, nil
}

// GeneratePDF produce el documento imprimible de la orden.
func (uc *PurchaseOrderUseCase) GeneratePDF(id string) ([]byte, string, error) {
	po, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if po == nil {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.pdf.GeneratePurchaseOrderPDF(po)
	if err != nil {
		return nil, "", err
	}
	return data, po.OrderNumber, nil
}

func toPurchaseOrderResponse(po *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(po.Items))
	for _, it := range po.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ID:         it.ID,
			Name:       it.Name,
			Quantity:   it.Quantity,
			Unit:       it.Unit,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:               po.ID,
		OrderNumber:      po.OrderNumber,
		Supplier:         po.Supplier,
		Project:          po.Project,
		Status:           po.Status,
		Priority:         po.Priority,
		OrderDate:        po.OrderDate,
		ExpectedDelivery: po.ExpectedDelivery,
		ActualDelivery:   po.ActualDelivery,
		TotalAmount:      po.TotalAmount,
		PaidAmount:       po.PaidAmount,
		ApprovedBy:       po.ApprovedBy,
		Notes:            po.Notes,
		Items:            items,
		CreatedBy:        po.CreatedBy,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
	}
}
