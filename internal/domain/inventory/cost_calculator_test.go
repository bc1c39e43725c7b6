package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCostCalculator_PromedioPonderado(t *testing.T) {
	// 100 unidades a MAUC 10, entran 50 a 16: (100*10 + 50*16) / 150 = 12
	got := inventory.CostCalculator(d("100"), d("10"), d("50"), d("16"))
	assert.True(t, got.Equal(d("12")), "esperaba 12, obtuve %s", got)

	// 20 unidades a MAUC 25, entran 30 a 30: (20*25 + 30*30) / 50 = 28
	got = inventory.CostCalculator(d("20"), d("25"), d("30"), d("30"))
	assert.True(t, got.Equal(d("28")), "esperaba 28, obtuve %s", got)
}

func TestCostCalculator_StockCero(t *testing.T) {
	// Sin stock previo el MAUC es directamente el costo de entrada.
	got := inventory.CostCalculator(decimal.Zero, decimal.Zero, d("20"), d("5"))
	assert.True(t, got.Equal(d("5")), "esperaba 5, obtuve %s", got)
}

func TestCostCalculator_SumaCero(t *testing.T) {
	// Caso degenerado stock + entrada == 0: no divide por cero, devuelve el costo.
	got := inventory.CostCalculator(decimal.Zero, d("10"), decimal.Zero, d("7"))
	assert.True(t, got.Equal(d("7")))
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name    string
		stock   string
		min     string
		active  bool
		want    string
	}{
		{"descontinuado", "50", "10", false, entity.StockStatusDiscontinued},
		{"sin stock", "0", "10", true, entity.StockStatusOutOfStock},
		{"bajo minimo", "10", "10", true, entity.StockStatusLowStock},
		{"debajo del minimo", "3", "10", true, entity.StockStatusLowStock},
		{"en stock", "11", "10", true, entity.StockStatusInStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{
				CurrentStock:  d(tc.stock),
				MinStockLevel: d(tc.min),
				IsActive:      tc.active,
			}
			assert.Equal(t, tc.want, inventory.StockStatus(p))
		})
	}
}
