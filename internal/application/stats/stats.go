// Package stats agrega colecciones de entidades en los contadores que
// consumen las vistas tipo dashboard. Funciones puras: no mutan la entrada y
// se recalculan completas en cada ciclo de listado.
package stats

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/inventory"
)

// ComputeProductStats cuenta productos por estado derivado de stock y suma el
// valor del inventario (stock * MAUC).
func ComputeProductStats(products []*entity.Product) dto.ProductStats {
	s := dto.ProductStats{TotalValue: decimal.Zero}
	for _, p := range products {
		s.Total++
		switch inventory.StockStatus(p) {
		case entity.StockStatusInStock:
			s.InStock++
		case entity.StockStatusLowStock:
			s.LowStock++
		case entity.StockStatusOutOfStock:
			s.OutOfStock++
		case entity.StockStatusDiscontinued:
			s.Inactive++
		}
		s.TotalValue = s.TotalValue.Add(p.TotalValue())
	}
	return s
}

// ComputeVendorStats cuenta proveedores por estado y tipo y promedia las
// métricas pre-calculadas (rating, tasa de entrega a tiempo). Los promedios
// son cero sobre colecciones vacías.
func ComputeVendorStats(vendors []*entity.Vendor) dto.VendorStats {
	s := dto.VendorStats{
		TotalValue:    decimal.Zero,
		AvgRating:     decimal.Zero,
		AvgOnTimeRate: decimal.Zero,
	}
	sumRating := decimal.Zero
	sumOnTime := decimal.Zero
	for _, v := range vendors {
		s.Total++
		switch v.Status {
		case entity.VendorStatusActive:
			s.Active++
		case entity.VendorStatusInactive:
			s.Inactive++
		case entity.VendorStatusPending:
			s.Pending++
		case entity.VendorStatusBlacklisted:
			s.Blacklisted++
		}
		switch v.Type {
		case entity.VendorTypeSupplier:
			s.SupplierCount++
		case entity.VendorTypeContractor:
			s.ContractorCount++
		case entity.VendorTypeConsultant:
			s.ConsultantCount++
		}
		s.TotalValue = s.TotalValue.Add(v.TotalValue)
		sumRating = sumRating.Add(v.Rating)
		sumOnTime = sumOnTime.Add(v.OnTimeDeliveryRate)
	}
	if s.Total > 0 {
		n := decimal.NewFromInt(int64(s.Total))
		s.AvgRating = sumRating.Div(n).Round(2)
		s.AvgOnTimeRate = sumOnTime.Div(n).Round(2)
	}
	return s
}

// ComputeEquipmentStats cuenta equipos por estado y tipo, suma valores y
// promedia la utilización pre-calculada. now se usa para detectar
// mantenimientos vencidos.
func ComputeEquipmentStats(equipment []*entity.Equipment, now time.Time) dto.EquipmentStats {
	s := dto.EquipmentStats{
		TotalValue:         decimal.Zero,
		TotalPurchaseValue: decimal.Zero,
		AvgUtilization:     decimal.Zero,
		MaintenanceCost:    decimal.Zero,
	}
	sumUtil := decimal.Zero
	for _, e := range equipment {
		s.Total++
		switch e.Status {
		case entity.EquipmentStatusAvailable:
			s.Available++
		case entity.EquipmentStatusInUse:
			s.InUse++
		case entity.EquipmentStatusMaintenance:
			s.Maintenance++
		case entity.EquipmentStatusOutOfService:
			s.OutOfService++
		case entity.EquipmentStatusRetired:
			s.Retired++
		}
		switch e.Type {
		case entity.EquipmentTypeHeavyMachinery:
			s.HeavyMachinery++
		case entity.EquipmentTypeVehicles:
			s.Vehicles++
		case entity.EquipmentTypeTools:
			s.Tools++
		case entity.EquipmentTypeSafetyEquipment:
			s.SafetyEquipment++
		}
		if e.MaintenanceOverdue(now) {
			s.MaintenanceOverdue++
		}
		s.TotalValue = s.TotalValue.Add(e.CurrentValue)
		s.TotalPurchaseValue = s.TotalPurchaseValue.Add(e.PurchasePrice)
		s.MaintenanceCost = s.MaintenanceCost.Add(e.MaintenanceCostYTD)
		sumUtil = sumUtil.Add(e.UtilizationRate)
	}
	if s.Total > 0 {
		s.AvgUtilization = sumUtil.Div(decimal.NewFromInt(int64(s.Total))).Round(2)
	}
	return s
}

// ComputePurchaseOrderStats cuenta órdenes por estado, suma montos y calcula
// la tasa de entrega a tiempo sobre las órdenes recibidas.
func ComputePurchaseOrderStats(orders []*entity.PurchaseOrder) dto.PurchaseOrderStats {
	s := dto.PurchaseOrderStats{
		TotalAmount:    decimal.Zero,
		PaidAmount:     decimal.Zero,
		OutstandingAmt: decimal.Zero,
		AvgOrderValue:  decimal.Zero,
		OnTimeRate:     decimal.Zero,
	}
	received := 0
	onTime := 0
	for _, po := range orders {
		s.Total++
		switch po.Status {
		case entity.POStatusDraft:
			s.Draft++
		case entity.POStatusPending:
			s.Pending++
		case entity.POStatusApproved:
			s.Approved++
		case entity.POStatusOrdered:
			s.Ordered++
		case entity.POStatusReceived:
			s.Received++
		case entity.POStatusCancelled:
			s.Cancelled++
		}
		s.TotalAmount = s.TotalAmount.Add(po.TotalAmount)
		s.PaidAmount = s.PaidAmount.Add(po.PaidAmount)
		if po.Status == entity.POStatusReceived {
			received++
			if po.DeliveredOnTime() {
				onTime++
			}
		}
	}
	s.OutstandingAmt = s.TotalAmount.Sub(s.PaidAmount)
	if s.Total > 0 {
		s.AvgOrderValue = s.TotalAmount.Div(decimal.NewFromInt(int64(s.Total))).Round(2)
	}
	if received > 0 {
		s.OnTimeRate = decimal.NewFromInt(int64(onTime * 100)).Div(decimal.NewFromInt(int64(received))).Round(2)
	}
	return s
}

// ComputeProjectStats cuenta proyectos por estado, suma presupuesto y gasto y
// promedia el avance.
func ComputeProjectStats(projects []*entity.Project) dto.ProjectStats {
	s := dto.ProjectStats{
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
		AvgProgress: decimal.Zero,
	}
	sumProgress := decimal.Zero
	for _, p := range projects {
		s.Total++
		switch p.Status {
		case entity.ProjectStatusPlanning:
			s.Planning++
		case entity.ProjectStatusActive:
			s.Active++
		case entity.ProjectStatusOnHold:
			s.OnHold++
		case entity.ProjectStatusCompleted:
			s.Completed++
		case entity.ProjectStatusCancelled:
			s.Cancelled++
		}
		s.TotalBudget = s.TotalBudget.Add(p.Budget)
		s.TotalSpent = s.TotalSpent.Add(p.ActualCost)
		sumProgress = sumProgress.Add(p.Progress)
	}
	if s.Total > 0 {
		s.AvgProgress = sumProgress.Div(decimal.NewFromInt(int64(s.Total))).Round(2)
	}
	return s
}

// ComputeTransactionSummary acumula movimientos por tipo (cantidad, valor y
// conteo) para el resumen del dashboard.
func ComputeTransactionSummary(txs []*entity.StockTransaction) map[string]dto.TransactionTypeSummary {
	summary := map[string]dto.TransactionTypeSummary{
		entity.TransactionTypeIN:     {Quantity: decimal.Zero, TotalValue: decimal.Zero},
		entity.TransactionTypeOUT:    {Quantity: decimal.Zero, TotalValue: decimal.Zero},
		entity.TransactionTypeRETURN: {Quantity: decimal.Zero, TotalValue: decimal.Zero},
	}
	for _, tx := range txs {
		acc, ok := summary[tx.TransactionType]
		if !ok {
			continue
		}
		acc.Quantity = acc.Quantity.Add(tx.Quantity)
		acc.TotalValue = acc.TotalValue.Add(tx.TotalValue)
		acc.Count++
		summary[tx.TransactionType] = acc
	}
	return summary
}
