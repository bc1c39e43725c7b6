package stats_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ObraCore-api/internal/application/stats"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestComputeProductStats(t *testing.T) {
	products := []*entity.Product{
		{CurrentStock: d("100"), MinStockLevel: d("10"), MAUC: d("5"), IsActive: true},  // in-stock, valor 500
		{CurrentStock: d("10"), MinStockLevel: d("10"), MAUC: d("2"), IsActive: true},   // low-stock, valor 20
		{CurrentStock: d("0"), MinStockLevel: d("5"), MAUC: d("9"), IsActive: true},     // out-of-stock
		{CurrentStock: d("50"), MinStockLevel: d("5"), MAUC: d("1"), IsActive: false},   // discontinued, valor 50
	}
	s := stats.ComputeProductStats(products)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.InStock)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 1, s.OutOfStock)
	assert.Equal(t, 1, s.Inactive)
	assert.True(t, s.TotalValue.Equal(d("570")), "valor total: %s", s.TotalValue)
}

func TestComputeVendorStats(t *testing.T) {
	vendors := []*entity.Vendor{
		{Status: entity.VendorStatusActive, Type: entity.VendorTypeSupplier, Rating: d("4"), OnTimeDeliveryRate: d("90"), TotalValue: d("1000")},
		{Status: entity.VendorStatusActive, Type: entity.VendorTypeContractor, Rating: d("5"), OnTimeDeliveryRate: d("80"), TotalValue: d("2000")},
		{Status: entity.VendorStatusBlacklisted, Type: entity.VendorTypeSupplier, Rating: d("1"), OnTimeDeliveryRate: d("10"), TotalValue: d("0")},
	}
	s := stats.ComputeVendorStats(vendors)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.Blacklisted)
	assert.Equal(t, 2, s.SupplierCount)
	assert.Equal(t, 1, s.ContractorCount)
	assert.True(t, s.TotalValue.Equal(d("3000")))
	// Promedios de métricas pre-almacenadas: (4+5+1)/3 y (90+80+10)/3.
	assert.True(t, s.AvgRating.Equal(d("3.33")), "avg rating: %s", s.AvgRating)
	assert.True(t, s.AvgOnTimeRate.Equal(d("60")), "avg on-time: %s", s.AvgOnTimeRate)
}

func TestComputeEquipmentStats(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)
	equipment := []*entity.Equipment{
		{Status: entity.EquipmentStatusAvailable, Type: entity.EquipmentTypeTools, CurrentValue: d("100"), PurchasePrice: d("200"), UtilizationRate: d("50"), NextService: &future},
		{Status: entity.EquipmentStatusInUse, Type: entity.EquipmentTypeHeavyMachinery, CurrentValue: d("5000"), PurchasePrice: d("9000"), UtilizationRate: d("90"), NextService: &past},
	}
	s := stats.ComputeEquipmentStats(equipment, now)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Available)
	assert.Equal(t, 1, s.InUse)
	assert.Equal(t, 1, s.Tools)
	assert.Equal(t, 1, s.HeavyMachinery)
	assert.Equal(t, 1, s.MaintenanceOverdue)
	assert.True(t, s.TotalValue.Equal(d("5100")))
	assert.True(t, s.AvgUtilization.Equal(d("70")))
}

func TestComputePurchaseOrderStats(t *testing.T) {
	expected := time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)
	early := expected.AddDate(0, 0, -1)
	late := expected.AddDate(0, 0, 3)
	orders := []*entity.PurchaseOrder{
		{Status: entity.POStatusReceived, TotalAmount: d("1000"), PaidAmount: d("1000"), ExpectedDelivery: &expected, ActualDelivery: &early},
		{Status: entity.POStatusReceived, TotalAmount: d("2000"), PaidAmount: d("500"), ExpectedDelivery: &expected, ActualDelivery: &late},
		{Status: entity.POStatusPending, TotalAmount: d("3000"), PaidAmount: d("0")},
	}
	s := stats.ComputePurchaseOrderStats(orders)

	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 2, s.Received)
	assert.Equal(t, 1, s.Pending)
	assert.True(t, s.TotalAmount.Equal(d("6000")))
	assert.True(t, s.PaidAmount.Equal(d("1500")))
	assert.True(t, s.OutstandingAmt.Equal(d("4500")))
	assert.True(t, s.AvgOrderValue.Equal(d("2000")))
	// 1 de 2 recibidas llegó a tiempo.
	assert.True(t, s.OnTimeRate.Equal(d("50")), "on-time rate: %s", s.OnTimeRate)
}

func TestComputeProjectStats(t *testing.T) {
	projects := []*entity.Project{
		{Status: entity.ProjectStatusActive, Budget: d("10000"), ActualCost: d("4000"), Progress: d("40")},
		{Status: entity.ProjectStatusCompleted, Budget: d("5000"), ActualCost: d("5200"), Progress: d("100")},
	}
	s := stats.ComputeProjectStats(projects)

	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Active)
	assert.Equal(t, 1, s.Completed)
	assert.True(t, s.TotalBudget.Equal(d("15000")))
	assert.True(t, s.TotalSpent.Equal(d("9200")))
	assert.True(t, s.AvgProgress.Equal(d("70")))
}

func TestStats_ColeccionesVacias(t *testing.T) {
	// Ningún agregado puede dar NaN ni dividir por cero sobre vacío.
	ps := stats.ComputeProductStats(nil)
	assert.Zero(t, ps.Total)
	assert.True(t, ps.TotalValue.IsZero())

	vs := stats.ComputeVendorStats(nil)
	assert.Zero(t, vs.Total)
	assert.True(t, vs.AvgRating.IsZero())
	assert.True(t, vs.AvgOnTimeRate.IsZero())

	es := stats.ComputeEquipmentStats(nil, time.Now())
	assert.Zero(t, es.Total)
	assert.True(t, es.AvgUtilization.IsZero())

	pos := stats.ComputePurchaseOrderStats(nil)
	assert.Zero(t, pos.Total)
	assert.True(t, pos.AvgOrderValue.IsZero())
	assert.True(t, pos.OnTimeRate.IsZero())

	prs := stats.ComputeProjectStats(nil)
	assert.Zero(t, prs.Total)
	assert.True(t, prs.AvgProgress.IsZero())
}

func TestComputeTransactionSummary(t *testing.T) {
	txs := []*entity.StockTransaction{
		{TransactionType: entity.TransactionTypeIN, Quantity: d("10"), TotalValue: d("100")},
		{TransactionType: entity.TransactionTypeIN, Quantity: d("5"), TotalValue: d("50")},
		{TransactionType: entity.TransactionTypeOUT, Quantity: d("3"), TotalValue: d("30")},
	}
	sum := stats.ComputeTransactionSummary(txs)

	assert.Equal(t, 2, sum[entity.TransactionTypeIN].Count)
	assert.True(t, sum[entity.TransactionTypeIN].Quantity.Equal(d("15")))
	assert.True(t, sum[entity.TransactionTypeIN].TotalValue.Equal(d("150")))
	assert.Equal(t, 1, sum[entity.TransactionTypeOUT].Count)
	assert.Zero(t, sum[entity.TransactionTypeRETURN].Count)
	assert.True(t, sum[entity.TransactionTypeRETURN].Quantity.IsZero())
}
