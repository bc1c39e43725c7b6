package usecase_test

import (
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ObraCore-api/internal/application/dto"
	"github.com/jhoicas/ObraCore-api/internal/application/filter"
	"github.com/jhoicas/ObraCore-api/internal/application/usecase"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr[T any](v T) *T { return &v }

var actor = entity.Actor{ID: "u-1", Name: "María Gómez", Email: "maria@obracore.test"}

// --- fakes en memoria ---

type memProducts struct {
	items map[string]*entity.Product
}

func (r *memProducts) Create(p *entity.Product) error { r.items[p.ID] = p; return nil }
func (r *memProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProducts) GetBySKU(string) (*entity.Product, error)      { return nil, nil }
func (r *memProducts) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }
func (r *memProducts) Update(p *entity.Product) error                { r.items[p.ID] = p; return nil }
func (r *memProducts) UpdateStock(id string, stock, mauc decimal.Decimal) error {
	r.items[id].CurrentStock = stock
	r.items[id].MAUC = mauc
	return nil
}
func (r *memProducts) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}
func (r *memProducts) Delete(id string) error { delete(r.items, id); return nil }

type memStockTxs struct {
	countByProduct map[string]int
}

func (r *memStockTxs) Create(*entity.StockTransaction) error { return nil }
func (r *memStockTxs) ListByProduct(string, int) ([]*entity.StockTransaction, error) {
	return nil, nil
}
func (r *memStockTxs) List(int) ([]*entity.StockTransaction, error)            { return nil, nil }
func (r *memStockTxs) ListSince(time.Time) ([]*entity.StockTransaction, error) { return nil, nil }
func (r *memStockTxs) CountByProduct(id string) (int, error) {
	return r.countByProduct[id], nil
}

type memLookups struct{}

func (memLookups) List() ([]*entity.ProductCategory, error) {
	return []*entity.ProductCategory{{ID: "c1", Name: "Cemento"}}, nil
}

type memLocations struct{}

func (memLocations) List() ([]*entity.InventoryLocation, error) {
	return []*entity.InventoryLocation{{ID: "l1", Name: "Bodega Central"}}, nil
}

type memProjects struct {
	items map[string]*entity.Project
	last  string
}

func (r *memProjects) Create(p *entity.Project) error {
	r.items[p.ID] = p
	r.last = p.JobNumber
	return nil
}
func (r *memProjects) GetByID(id string) (*entity.Project, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r *memProjects) Update(p *entity.Project) error { r.items[p.ID] = p; return nil }
func (r *memProjects) List() ([]*entity.Project, error) {
	out := make([]*entity.Project, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}
func (r *memProjects) LastJobNumber() (string, error) { return r.last, nil }

type memTasks struct {
	items map[string]*entity.Task
}

func (r *memTasks) Create(t *entity.Task) error { r.items[t.ID] = t; return nil }
func (r *memTasks) GetByID(id string) (*entity.Task, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}
func (r *memTasks) Update(t *entity.Task) error { r.items[t.ID] = t; return nil }
func (r *memTasks) ListByProject(projectID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.items {
		if t.ProjectID == projectID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memOrders struct {
	items map[string]*entity.PurchaseOrder
	last  string
}

func (r *memOrders) Create(po *entity.PurchaseOrder) error {
	r.items[po.ID] = po
	r.last = po.OrderNumber
	return nil
}
func (r *memOrders) GetByID(id string) (*entity.PurchaseOrder, error) {
	po, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *po
	return &cp, nil
}
func (r *memOrders) Update(po *entity.PurchaseOrder) error { r.items[po.ID] = po; return nil }
func (r *memOrders) List() ([]*entity.PurchaseOrder, error) {
	out := make([]*entity.PurchaseOrder, 0, len(r.items))
	for _, po := range r.items {
		cp := *po
		out = append(out, &cp)
	}
	return out, nil
}
func (r *memOrders) LastOrderNumber(int) (string, error) { return r.last, nil }

// --- productos ---

func cemento() *entity.Product {
	return &entity.Product{
		ID: "p-1", SKU: "CEM-001", Name: "Cemento Portland",
		UnitOfMeasure: "bolsa", CurrentStock: d("20"), MinStockLevel: d("10"),
		MAUC: d("25"), IsActive: true,
	}
}

func TestProductDelete_ConHistorialDevuelveConflicto(t *testing.T) {
	products := &memProducts{items: map[string]*entity.Product{"p-1": cemento()}}
	txs := &memStockTxs{countByProduct: map[string]int{"p-1": 3}}
	uc := usecase.NewProductUseCase(products, txs, memLookups{}, memLocations{})

	err := uc.Delete("p-1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, ok := products.items["p-1"]
	assert.True(t, ok, "el producto no debe borrarse")
}

func TestProductDelete_SinHistorial(t *testing.T) {
	products := &memProducts{items: map[string]*entity.Product{"p-1": cemento()}}
	txs := &memStockTxs{countByProduct: map[string]int{}}
	uc := usecase.NewProductUseCase(products, txs, memLookups{}, memLocations{})

	require.NoError(t, uc.Delete("p-1"))
	_, ok := products.items["p-1"]
	assert.False(t, ok)
}

func TestProductUpdate_NoTocaStockNiMAUC(t *testing.T) {
	products := &memProducts{items: map[string]*entity.Product{"p-1": cemento()}}
	uc := usecase.NewProductUseCase(products, &memStockTxs{countByProduct: map[string]int{}}, memLookups{}, memLocations{})

	resp, err := uc.Update("p-1", dto.UpdateProductRequest{Name: ptr("Cemento Gris")})
	require.NoError(t, err)
	assert.Equal(t, "Cemento Gris", resp.Name)
	assert.True(t, resp.CurrentStock.Equal(d("20")))
	assert.True(t, resp.MAUC.Equal(d("25")))
}

func TestProductList_EstadoDerivadoYStats(t *testing.T) {
	low := cemento()
	low.ID, low.SKU, low.CurrentStock = "p-2", "ARE-001", d("5")
	products := &memProducts{items: map[string]*entity.Product{"p-1": cemento(), "p-2": low}}
	uc := usecase.NewProductUseCase(products, &memStockTxs{countByProduct: map[string]int{}}, memLookups{}, memLocations{})

	resp, err := uc.List(filter.ProductFilter{}, 100, 0)
	require.NoError(t, err)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, 1, resp.Stats.LowStock)
	assert.Equal(t, 1, resp.Stats.InStock)
	assert.Len(t, resp.Categories, 1)
	assert.Len(t, resp.Locations, 1)
}

// --- proyectos ---

func TestProjectCreate_GeneraNumeroDeObra(t *testing.T) {
	projects := &memProjects{items: map[string]*entity.Project{}}
	uc := usecase.NewProjectUseCase(projects, &memTasks{items: map[string]*entity.Task{}})

	first, err := uc.Create(actor, dto.CreateProjectRequest{Name: "Torre Norte"})
	require.NoError(t, err)
	assert.Equal(t, "PRJ-0001", first.JobNumber)
	assert.Equal(t, entity.ProjectStatusPlanning, first.Status)

	second, err := uc.Create(actor, dto.CreateProjectRequest{Name: "Torre Sur"})
	require.NoError(t, err)
	assert.Equal(t, "PRJ-0002", second.JobNumber)
}

func TestProjectUpdate_ValidaFechasYProgreso(t *testing.T) {
	projects := &memProjects{items: map[string]*entity.Project{}}
	uc := usecase.NewProjectUseCase(projects, &memTasks{items: map[string]*entity.Task{}})

	created, err := uc.Create(actor, dto.CreateProjectRequest{Name: "Torre Norte"})
	require.NoError(t, err)

	_, err = uc.Update(created.ID, dto.UpdateProjectRequest{Progress: ptr(d("120"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	_, err = uc.Update(created.ID, dto.UpdateProjectRequest{StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTasks_AltaYTransicion(t *testing.T) {
	projects := &memProjects{items: map[string]*entity.Project{}}
	uc := usecase.NewProjectUseCase(projects, &memTasks{items: map[string]*entity.Task{}})

	project, err := uc.Create(actor, dto.CreateProjectRequest{Name: "Torre Norte"})
	require.NoError(t, err)

	task, err := uc.CreateTask(project.ID, dto.CreateTaskRequest{Title: "Replanteo"})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusTodo, task.Status)

	updated, err := uc.UpdateTask(task.ID, dto.UpdateTaskRequest{Status: ptr(entity.TaskStatusDone)})
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, updated.Status)

	_, err = uc.UpdateTask(task.ID, dto.UpdateTaskRequest{Status: ptr("archived")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateTask("no-existe", dto.CreateTaskRequest{Title: "Huérfana"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- órdenes de compra ---

func TestPOCreate_NumeroYTotalesDelServidor(t *testing.T) {
	orders := &memOrders{items: map[string]*entity.PurchaseOrder{}}
	uc := usecase.NewPurchaseOrderUseCase(orders, nil)

	resp, err := uc.Create(actor, dto.CreatePurchaseOrderRequest{
		Supplier: "Aceros del Valle",
		Items: []dto.PurchaseOrderItemRequest{
			{Name: "Varilla 12mm", Quantity: d("100"), Unit: "un", UnitPrice: d("8.50")},
			{Name: "Alambre", Quantity: d("20"), Unit: "kg", UnitPrice: d("3")},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, resp.OrderNumber, "PO-")
	assert.Contains(t, resp.OrderNumber, "-001")
	assert.Equal(t, entity.POStatusPending, resp.Status)
	assert.True(t, resp.TotalAmount.Equal(d("910")), "total=%s", resp.TotalAmount)
	assert.True(t, resp.Items[0].TotalPrice.Equal(d("850")))

	second, err := uc.Create(actor, dto.CreatePurchaseOrderRequest{
		Supplier: "Aceros del Valle",
		Items:    []dto.PurchaseOrderItemRequest{{Name: "Clavos", Quantity: d("1"), UnitPrice: d("5")}},
	})
	require.NoError(t, err)
	assert.Contains(t, second.OrderNumber, "-002")
}

func TestPOCreate_LineasInvalidas(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(&memOrders{items: map[string]*entity.PurchaseOrder{}}, nil)

	_, err := uc.Create(actor, dto.CreatePurchaseOrderRequest{Supplier: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(actor, dto.CreatePurchaseOrderRequest{
		Supplier: "X",
		Items:    []dto.PurchaseOrderItemRequest{{Name: "Varilla", Quantity: d("0"), UnitPrice: d("8")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPOUpdate_RecibidaFijaEntregaReal(t *testing.T) {
	orders := &memOrders{items: map[string]*entity.PurchaseOrder{}}
	uc := usecase.NewPurchaseOrderUseCase(orders, nil)

	created, err := uc.Create(actor, dto.CreatePurchaseOrderRequest{
		Supplier: "Aceros del Valle",
		Items:    []dto.PurchaseOrderItemRequest{{Name: "Varilla", Quantity: d("10"), UnitPrice: d("8")}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.UpdatePurchaseOrderRequest{Status: ptr(entity.POStatusReceived)})
	require.NoError(t, err)
	require.NotNil(t, updated.ActualDelivery)

	_, err = uc.Update(created.ID, dto.UpdatePurchaseOrderRequest{PaidAmount: ptr(d("999"))})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// --- proveedores ---

func TestVendorCreate_DefaultsYValidacion(t *testing.T) {
	uc := usecase.NewVendorUseCase(&memVendors{items: map[string]*entity.Vendor{}})

	resp, err := uc.Create(actor, dto.CreateVendorRequest{Name: "Aceros del Valle", Type: entity.VendorTypeSupplier})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorStatusPending, resp.Status)
	assert.Equal(t, actor.Name, resp.CreatedBy)

	_, err = uc.Create(actor, dto.CreateVendorRequest{Name: "Sin Tipo", Type: "banco"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(actor, dto.CreateVendorRequest{Name: "Rating", Type: entity.VendorTypeSupplier, Rating: d("6")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

type memVendors struct {
	items map[string]*entity.Vendor
}

func (r *memVendors) Create(v *entity.Vendor) error { r.items[v.ID] = v; return nil }
func (r *memVendors) GetByID(id string) (*entity.Vendor, error) {
	v, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}
func (r *memVendors) Update(v *entity.Vendor) error { r.items[v.ID] = v; return nil }
func (r *memVendors) List() ([]*entity.Vendor, error) {
	out := make([]*entity.Vendor, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

// --- equipos ---

type memEquipment struct {
	items map[string]*entity.Equipment
}

func (r *memEquipment) Create(e *entity.Equipment) error { r.items[e.ID] = e; return nil }
func (r *memEquipment) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}
func (r *memEquipment) Update(e *entity.Equipment) error { r.items[e.ID] = e; return nil }
func (r *memEquipment) List() ([]*entity.Equipment, error) {
	out := make([]*entity.Equipment, 0, len(r.items))
	for _, e := range r.items {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

type memEquipmentTxs struct {
	items []*entity.EquipmentTransaction
}

func (r *memEquipmentTxs) Create(tx *entity.EquipmentTransaction) error {
	r.items = append(r.items, tx)
	return nil
}
func (r *memEquipmentTxs) ListByEquipment(id string, limit int) ([]*entity.EquipmentTransaction, error) {
	var out []*entity.EquipmentTransaction
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		if r.items[i].EquipmentID == id {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}

func TestEquipmentMaintenance_ActualizaServicioYCosto(t *testing.T) {
	equipment := &memEquipment{items: map[string]*entity.Equipment{}}
	txs := &memEquipmentTxs{}
	uc := usecase.NewEquipmentUseCase(equipment, txs)

	created, err := uc.Create(actor, dto.CreateEquipmentRequest{Name: "Excavadora CAT", Type: entity.EquipmentTypeHeavyMachinery})
	require.NoError(t, err)
	assert.Equal(t, entity.EquipmentStatusAvailable, created.Status)
	assert.Equal(t, entity.EquipmentConditionGood, created.Condition)

	_, err = uc.AddTransaction(actor, created.ID, dto.CreateEquipmentTransactionRequest{
		Type: entity.EquipmentTxMaintenance, Cost: d("1500"), Description: "Cambio de aceite",
	})
	require.NoError(t, err)

	after, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.True(t, after.MaintenanceCostYTD.Equal(d("1500")))
	require.NotNil(t, after.LastService)

	history, err := uc.History(created.ID, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, entity.EquipmentTxMaintenance, history[0].Type)
}
