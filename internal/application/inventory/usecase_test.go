package inventory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/jhoicas/ObraCore-api/internal/application/inventory"
	"github.com/jhoicas/ObraCore-api/internal/domain"
	"github.com/jhoicas/ObraCore-api/internal/domain/entity"
	"github.com/jhoicas/ObraCore-api/internal/domain/repository"
)

// ─── Fakes en memoria con semántica de commit/rollback ────────────────────────

type memStore struct {
	products map[string]*entity.Product
	ledger   []*entity.StockTransaction
	// failUpdateStock fuerza un error después de insertar el asiento, para
	// verificar que la transacción revierte todo.
	failUpdateStock bool
}

func newMemStore(products ...*entity.Product) *memStore {
	s := &memStore{products: map[string]*entity.Product{}}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *memStore) clone() *memStore {
	c := &memStore{
		products:        make(map[string]*entity.Product, len(s.products)),
		ledger:          append([]*entity.StockTransaction(nil), s.ledger...),
		failUpdateStock: s.failUpdateStock,
	}
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	return c
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateStock(productID string, stock, mauc decimal.Decimal) error {
	if r.s.failUpdateStock {
		return errors.New("update stock: fallo inyectado")
	}
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = stock
	p.MAUC = mauc
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

type memTxRepo struct{ s *memStore }

func (r *memTxRepo) Create(tx *entity.StockTransaction) error {
	cp := *tx
	r.s.ledger = append(r.s.ledger, &cp)
	return nil
}

func (r *memTxRepo) ListByProduct(productID string, limit int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for i := len(r.s.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.ledger[i].ProductID == productID {
			cp := *r.s.ledger[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTxRepo) List(limit int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for i := len(r.s.ledger) - 1; i >= 0 && len(out) < limit; i-- {
		cp := *r.s.ledger[i]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memTxRepo) ListSince(since time.Time) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range r.s.ledger {
		if !tx.DoneAt.Before(since) {
			cp := *tx
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memTxRepo) CountByProduct(productID string) (int, error) {
	n := 0
	for _, tx := range r.s.ledger {
		if tx.ProductID == productID {
			n++
		}
	}
	return n, nil
}

// memTxRunner ejecuta fn sobre una copia del store y solo la publica si fn
// termina sin error, igual que un Commit/Rollback real.
type memTxRunner struct{ s *memStore }

func (r *memTxRunner) Run(_ context.Context, fn func(
	txRepo repository.StockTransactionRepository,
	productRepo repository.ProductRepository,
) error) error {
	staging := r.s.clone()
	if err := fn(&memTxRepo{staging}, &memProductRepo{staging}); err != nil {
		return err
	}
	*r.s = *staging
	return nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

var actor = entity.Actor{ID: "u-1", Name: "Juan Pérez", Email: "juan@obracore.co"}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func cement(stock, mauc string) *entity.Product {
	return &entity.Product{
		ID:            "p-cem",
		SKU:           "CEM-001",
		Name:          "Cemento Portland",
		UnitOfMeasure: "bolsa",
		CurrentStock:  d(stock),
		MinStockLevel: d("10"),
		MAUC:          d(mauc),
		IsActive:      true,
	}
}

func newUC(s *memStore) *appinv.PostTransactionUseCase {
	return appinv.NewPostTransactionUseCase(&memTxRunner{s}, &memProductRepo{s})
}

// ─── PostTransaction ──────────────────────────────────────────────────────────

func TestPost_INConCosto(t *testing.T) {
	s := newMemStore(cement("20", "25"))
	uc := newUC(s)

	res, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeIN,
		Quantity:        d("30"),
		UnitCost:        ptr(d("30")),
	})
	require.NoError(t, err)

	// (20*25 + 30*30) / 50 = 28
	assert.True(t, res.NewStock.Equal(d("50")), "stock: %s", res.NewStock)
	assert.True(t, res.NewMAUC.Equal(d("28")), "mauc: %s", res.NewMAUC)

	p := s.products["p-cem"]
	assert.True(t, p.CurrentStock.Equal(d("50")))
	assert.True(t, p.MAUC.Equal(d("28")))

	require.Len(t, s.ledger, 1)
	tx := s.ledger[0]
	assert.Equal(t, entity.TransactionTypeIN, tx.TransactionType)
	assert.True(t, tx.Quantity.Equal(d("30")))
	assert.True(t, tx.TotalValue.Equal(d("900")))
	assert.Equal(t, actor.Name, tx.DoneBy)
}

func TestPost_INStockCero(t *testing.T) {
	s := newMemStore(cement("0", "0"))
	uc := newUC(s)

	res, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeIN,
		Quantity:        d("20"),
		UnitCost:        ptr(d("5")),
	})
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(d("20")))
	assert.True(t, res.NewMAUC.Equal(d("5")), "mauc sin división por cero: %s", res.NewMAUC)
}

func TestPost_INSinCostoNoCambiaMAUC(t *testing.T) {
	s := newMemStore(cement("100", "10"))
	uc := newUC(s)

	res, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeIN,
		Quantity:        d("50"),
	})
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(d("150")))
	assert.True(t, res.NewMAUC.Equal(d("10")))
	// El asiento se valoriza al MAUC vigente.
	assert.True(t, s.ledger[0].UnitCost.Equal(d("10")))
	assert.True(t, s.ledger[0].TotalValue.Equal(d("500")))
}

func TestPost_OUTBloqueadaPorStockInsuficiente(t *testing.T) {
	s := newMemStore(cement("5", "25"))
	uc := newUC(s)

	_, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeOUT,
		Quantity:        d("10"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada cambió: ni stock ni asientos.
	assert.True(t, s.products["p-cem"].CurrentStock.Equal(d("5")))
	assert.Empty(t, s.ledger)
}

func TestPost_OUTConservaStock(t *testing.T) {
	s := newMemStore(cement("50", "28"))
	uc := newUC(s)

	res, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeOUT,
		Quantity:        d("50"),
		ProjectName:     "Torre Norte",
	})
	require.NoError(t, err)
	// Sacar exactamente todo el stock es válido; el piso es cero.
	assert.True(t, res.NewStock.IsZero())
	assert.True(t, res.NewMAUC.Equal(d("28")), "OUT no toca el MAUC")
	assert.Equal(t, "Torre Norte", s.ledger[0].ProjectName)
}

func TestPost_RETURNSumaSinTocarMAUC(t *testing.T) {
	s := newMemStore(cement("10", "12"))
	uc := newUC(s)

	res, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeRETURN,
		Quantity:        d("4"),
		UnitCost:        ptr(d("99")), // aunque venga costo, RETURN no recalcula
	})
	require.NoError(t, err)
	assert.True(t, res.NewStock.Equal(d("14")))
	assert.True(t, res.NewMAUC.Equal(d("12")))
}

func TestPost_EntradasInvalidas(t *testing.T) {
	s := newMemStore(cement("10", "12"))
	uc := newUC(s)
	ctx := context.Background()

	cases := []appinv.PostTransactionInput{
		{ProductID: "p-cem", TransactionType: "TRANSFER", Quantity: d("1")},
		{ProductID: "p-cem", TransactionType: entity.TransactionTypeIN, Quantity: decimal.Zero},
		{ProductID: "p-cem", TransactionType: entity.TransactionTypeIN, Quantity: d("-3")},
		{ProductID: "p-cem", TransactionType: entity.TransactionTypeIN, Quantity: d("1"), UnitCost: ptr(d("-1"))},
		{ProductID: "", TransactionType: entity.TransactionTypeIN, Quantity: d("1")},
	}
	for _, in := range cases {
		_, err := uc.Post(ctx, actor, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, s.ledger)

	_, err := uc.Post(ctx, actor, appinv.PostTransactionInput{
		ProductID:       "no-existe",
		TransactionType: entity.TransactionTypeIN,
		Quantity:        d("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPost_RollbackSiFallaElUpdate(t *testing.T) {
	s := newMemStore(cement("20", "25"))
	s.failUpdateStock = true
	uc := newUC(s)

	_, err := uc.Post(context.Background(), actor, appinv.PostTransactionInput{
		ProductID:       "p-cem",
		TransactionType: entity.TransactionTypeIN,
		Quantity:        d("30"),
		UnitCost:        ptr(d("30")),
	})
	require.Error(t, err)

	// El asiento insertado dentro de la transacción también se revirtió.
	assert.Empty(t, s.ledger)
	assert.True(t, s.products["p-cem"].CurrentStock.Equal(d("20")))
	assert.True(t, s.products["p-cem"].MAUC.Equal(d("25")))
}

func TestPost_HistorialMasRecientePrimero(t *testing.T) {
	s := newMemStore(cement("0", "0"))
	uc := newUC(s)
	ctx := context.Background()

	for _, q := range []string{"10", "20", "30"} {
		_, err := uc.Post(ctx, actor, appinv.PostTransactionInput{
			ProductID:       "p-cem",
			TransactionType: entity.TransactionTypeIN,
			Quantity:        d(q),
			UnitCost:        ptr(d("5")),
		})
		require.NoError(t, err)
	}

	repo := &memTxRepo{s}
	first, err := repo.ListByProduct("p-cem", 50)
	require.NoError(t, err)
	require.Len(t, first, 3)
	assert.True(t, first[0].Quantity.Equal(d("30")), "el último movimiento va primero")

	// Lectura idempotente: sin escrituras intermedias, la misma lista.
	second, err := repo.ListByProduct("p-cem", 50)
	require.NoError(t, err)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

// ─── CreateProduct ────────────────────────────────────────────────────────────

func TestCreateProduct_ConStockInicialAtomico(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s})

	p, err := uc.Create(context.Background(), actor, appinv.CreateProductInput{
		SKU:           "VAR-12",
		Name:          "Varilla 12mm",
		UnitOfMeasure: "unidad",
		MinStockLevel: d("50"),
		MaxStockLevel: d("1000"),
		IsActive:      true,
		InitialStock:  d("200"),
		InitialUnitCost: ptr(d("12.75")),
	})
	require.NoError(t, err)

	assert.True(t, p.CurrentStock.Equal(d("200")))
	assert.True(t, p.MAUC.Equal(d("12.75")))
	require.Len(t, s.ledger, 1)
	assert.Equal(t, entity.TransactionTypeIN, s.ledger[0].TransactionType)
	assert.Equal(t, p.ID, s.ledger[0].ProductID)
}

func TestCreateProduct_SinStockInicial(t *testing.T) {
	s := newMemStore()
	uc := appinv.NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s})

	p, err := uc.Create(context.Background(), actor, appinv.CreateProductInput{
		SKU:           "ARE-01",
		Name:          "Arena fina",
		UnitOfMeasure: "m3",
		MAUC:          d("40"),
		IsActive:      true,
	})
	require.NoError(t, err)
	assert.True(t, p.CurrentStock.IsZero())
	assert.Empty(t, s.ledger, "sin stock inicial no hay asiento de apertura")
}

func TestCreateProduct_RollbackDejaTodoLimpio(t *testing.T) {
	s := newMemStore()
	s.failUpdateStock = true
	uc := appinv.NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s})

	_, err := uc.Create(context.Background(), actor, appinv.CreateProductInput{
		SKU:           "VAR-12",
		Name:          "Varilla 12mm",
		UnitOfMeasure: "unidad",
		IsActive:      true,
		InitialStock:  d("200"),
	})
	require.Error(t, err)
	// Ni el producto ni el asiento sobrevivieron al rollback.
	assert.Empty(t, s.products)
	assert.Empty(t, s.ledger)
}

func TestCreateProduct_Validaciones(t *testing.T) {
	s := newMemStore(cement("10", "25"))
	uc := appinv.NewCreateProductUseCase(&memTxRunner{s}, &memProductRepo{s})
	ctx := context.Background()

	_, err := uc.Create(ctx, actor, appinv.CreateProductInput{SKU: "", Name: "x", UnitOfMeasure: "u"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// max <= min es inválido cuando max viene informado
	_, err = uc.Create(ctx, actor, appinv.CreateProductInput{
		SKU: "X-1", Name: "x", UnitOfMeasure: "u",
		MinStockLevel: d("100"), MaxStockLevel: d("100"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// SKU duplicado
	_, err = uc.Create(ctx, actor, appinv.CreateProductInput{
		SKU: "CEM-001", Name: "Cemento otra vez", UnitOfMeasure: "bolsa",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func ptr[T any](v T) *T { return &v }
