package filter_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y, m, day int) *time.Time {
	t := time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, filter.MatchesSearch("", "lo que sea"), "búsqueda vacía matchea siempre")
	assert.True(t, filter.MatchesSearch("CEM", "Cemento Portland", "CEM-001"))
	assert.True(t, filter.MatchesSearch("cemento", "CEMENTO PORTLAND"), "case-insensitive")
	assert.True(t, filter.MatchesSearch("hormigon", "Hormigón H-21"), "sin tildes")
	assert.True(t, filter.MatchesSearch("Hormigón", "hormigon h-21"), "tildes en el término")
	assert.False(t, filter.MatchesSearch("acero", "Cemento", "Arena"))
}

func TestMatchesEnum(t *testing.T) {
	assert.True(t, filter.MatchesEnum("all", "active"))
	assert.True(t, filter.MatchesEnum("", "active"))
	assert.True(t, filter.MatchesEnum("active", "active"))
	assert.False(t, filter.MatchesEnum("inactive", "active"))
}

func TestNumericRange(t *testing.T) {
	min, max := d("10"), d("20")
	r := filter.NumericRange{Min: &min, Max: &max}
	assert.True(t, r.Matches(d("10")), "límite inferior inclusivo")
	assert.True(t, r.Matches(d("20")), "límite superior inclusivo")
	assert.True(t, r.Matches(d("15")))
	assert.False(t, r.Matches(d("9.99")))
	assert.False(t, r.Matches(d("20.01")))

	assert.True(t, filter.NumericRange{}.Matches(d("-5")), "sin bounds no restringe")
	assert.True(t, filter.NumericRange{Min: &min}.Matches(d("1000")))
}

func TestDateRange(t *testing.T) {
	from, to := date(2026, 1, 1), date(2026, 1, 31)
	r := filter.DateRange{From: from, To: to}
	assert.True(t, r.Matches(date(2026, 1, 1)), "desde inclusivo")
	assert.True(t, r.Matches(date(2026, 1, 31)), "hasta inclusivo")
	assert.False(t, r.Matches(date(2025, 12, 31)))
	assert.False(t, r.Matches(date(2026, 2, 1)))

	assert.True(t, filter.DateRange{From: from}.Matches(date(2030, 1, 1)), "sin To es abierto")
	assert.True(t, filter.DateRange{}.Matches(nil), "fecha nula pasa si el rango no restringe")
	assert.False(t, filter.DateRange{From: from}.Matches(nil), "fecha nula no pasa un rango acotado")
}

func TestProductFilter_ComposicionAND(t *testing.T) {
	p := &entity.Product{
		SKU:           "CEM-001",
		Name:          "Cemento Portland",
		CategoryID:    "cat-cemento",
		LocationID:    "loc-bodega-1",
		CurrentStock:  d("5"),
		MinStockLevel: d("10"),
		IsActive:      true,
	}

	// Todos los campos configurados se satisfacen: matchea.
	f := filter.ProductFilter{Search: "cemento", Status: entity.StockStatusLowStock, CategoryID: "cat-cemento"}
	assert.True(t, f.Matches(p))

	// Con dos campos cumplidos y uno no, el AND falla.
	f.Status = entity.StockStatusInStock
	assert.False(t, f.Matches(p))

	f = filter.ProductFilter{Search: "portland", LocationID: "loc-otra"}
	assert.False(t, f.Matches(p))

	// El centinela "all" ignora el campo.
	f = filter.ProductFilter{Status: filter.All, CategoryID: filter.All}
	assert.True(t, f.Matches(p))
}

func TestVendorFilter(t *testing.T) {
	v := &entity.Vendor{
		Name:     "Aceros del Sur",
		Type:     entity.VendorTypeSupplier,
		Status:   entity.VendorStatusActive,
		Category: "estructuras",
		Rating:   d("4.5"),
		Tags:     []string{"acero", "estructural"},
	}
	min := d("4")
	f := filter.VendorFilter{
		Search:    "estructural", // matchea por tag
		Type:      entity.VendorTypeSupplier,
		Status:    "all",
		MinRating: filter.NumericRange{Min: &min},
	}
	assert.True(t, f.Matches(v))

	min = d("4.6")
	f.MinRating = filter.NumericRange{Min: &min}
	assert.False(t, f.Matches(v))
}

func TestPurchaseOrderFilter_Rangos(t *testing.T) {
	po := &entity.PurchaseOrder{
		OrderNumber: "PO-2026-014",
		Supplier:    "Ready Mix Corp.",
		Status:      entity.POStatusApproved,
		Priority:    entity.PriorityHigh,
		OrderDate:   *date(2026, 3, 15),
		TotalAmount: d("15000"),
	}
	min, max := d("10000"), d("20000")
	f := filter.PurchaseOrderFilter{
		Search:    "ready",
		Status:    entity.POStatusApproved,
		Amount:    filter.NumericRange{Min: &min, Max: &max},
		OrderDate: filter.DateRange{From: date(2026, 3, 1), To: date(2026, 3, 31)},
	}
	assert.True(t, f.Matches(po))

	f.OrderDate = filter.DateRange{From: date(2026, 4, 1)}
	assert.False(t, f.Matches(po))
}

func TestApply_PreservaOrden(t *testing.T) {
	projects := []*entity.Project{
		{Name: "Torre Norte", Status: entity.ProjectStatusActive},
		{Name: "Puente Sur", Status: entity.ProjectStatusCompleted},
		{Name: "Torre Este", Status: entity.ProjectStatusActive},
	}
	f := filter.ProjectFilter{Status: entity.ProjectStatusActive}
	got := filter.Apply(projects, f.Matches)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "Torre Norte", got[0].Name)
		assert.Equal(t, "Torre Este", got[1].Name)
	}

	// Propiedad AND: todo elemento del resultado satisface cada campo por separado.
	for _, p := range got {
		assert.True(t, filter.MatchesEnum(f.Status, p.Status))
		assert.True(t, filter.MatchesSearch(f.Search, p.Name))
	}
}
