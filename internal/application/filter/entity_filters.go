package filter

import (
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/inventory"
)

// ProductFilter criterios de la vista de inventario. Status se evalúa contra
// el estado derivado de stock, no contra un campo persistido.
type ProductFilter struct {
	Search     string
	Status     string
	CategoryID string
	LocationID string
	Supplier   string
}

// Matches composición AND de todos los campos configurados.
func (f ProductFilter) Matches(p *entity.Product) bool {
	return MatchesSearch(f.Search, p.Name, p.SKU, p.Description, p.Supplier, p.Location) &&
		MatchesEnum(f.Status, inventory.StockStatus(p)) &&
		MatchesEnum(f.CategoryID, p.CategoryID) &&
		MatchesEnum(f.LocationID, p.LocationID) &&
		MatchesEnum(f.Supplier, p.Supplier)
}

// VendorFilter criterios de la vista de proveedores.
type VendorFilter struct {
	Search    string
	Type      string
	Status    string
	Category  string
	MinRating NumericRange
}

// Matches composición AND de todos los campos configurados.
func (f VendorFilter) Matches(v *entity.Vendor) bool {
	fields := []string{v.Name, v.Category, v.ContactPerson, v.Email, v.Notes}
	fields = append(fields, v.Tags...)
	return MatchesSearch(f.Search, fields...) &&
		MatchesEnum(f.Type, v.Type) &&
		MatchesEnum(f.Status, v.Status) &&
		MatchesEnum(f.Category, v.Category) &&
		f.MinRating.Matches(v.Rating)
}

// EquipmentFilter criterios de la vista de equipos.
type EquipmentFilter struct {
	Search     string
	Type       string
	Status     string
	Condition  string
	Category   string
	Location   string
	AssignedTo string
}

// Matches composición AND de todos los campos configurados.
func (f EquipmentFilter) Matches(e *entity.Equipment) bool {
	return MatchesSearch(f.Search, e.Name, e.Model, e.Manufacturer, e.SerialNumber, e.Notes) &&
		MatchesEnum(f.Type, e.Type) &&
		MatchesEnum(f.Status, e.Status) &&
		MatchesEnum(f.Condition, e.Condition) &&
		MatchesEnum(f.Category, e.Category) &&
		MatchesEnum(f.Location, e.Location) &&
		MatchesEnum(f.AssignedTo, e.AssignedTo)
}

// ProjectFilter criterios de la vista de proyectos.
type ProjectFilter struct {
	Search    string
	Status    string
	Priority  string
	Budget    NumericRange
	StartDate DateRange
}

// Matches composición AND de todos los campos configurados.
func (f ProjectFilter) Matches(p *entity.Project) bool {
	return MatchesSearch(f.Search, p.Name, p.JobNumber, p.Description, p.Client, p.Manager, p.Location) &&
		MatchesEnum(f.Status, p.Status) &&
		MatchesEnum(f.Priority, p.Priority) &&
		f.Budget.Matches(p.Budget) &&
		f.StartDate.Matches(p.StartDate)
}

// PurchaseOrderFilter criterios de la vista de compras.
type PurchaseOrderFilter struct {
	Search    string
	Status    string
	Priority  string
	Supplier  string
	Project   string
	Amount    NumericRange
	OrderDate DateRange
}

// Matches composición AND de todos los campos configurados.
func (f PurchaseOrderFilter) Matches(po *entity.PurchaseOrder) bool {
	orderDate := po.OrderDate
	return MatchesSearch(f.Search, po.OrderNumber, po.Supplier, po.Project, po.Notes) &&
		MatchesEnum(f.Status, po.Status) &&
		MatchesEnum(f.Priority, po.Priority) &&
		MatchesEnum(f.Supplier, po.Supplier) &&
		MatchesEnum(f.Project, po.Project) &&
		f.Amount.Matches(po.TotalAmount) &&
		f.OrderDate.Matches(&orderDate)
}
