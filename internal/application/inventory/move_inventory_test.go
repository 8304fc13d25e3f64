package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/inventory"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
)

type fakeMovements struct {
	created []*entity.StockMovement
}

func (f *fakeMovements) Create(m *entity.StockMovement) error {
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMovements) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	return f.created, nil
}

type stockKey struct{ product, location string }

type fakeStock struct {
	qty map[stockKey]decimal.Decimal
}

func newFakeStock() *fakeStock { return &fakeStock{qty: map[stockKey]decimal.Decimal{}} }

func (f *fakeStock) Get(productID, locationID string) (*entity.Stock, error) {
	q, ok := f.qty[stockKey{productID, locationID}]
	if !ok {
		return nil, nil
	}
	return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: q, UpdatedAt: time.Now()}, nil
}

func (f *fakeStock) Adjust(productID, locationID string, delta decimal.Decimal) (decimal.Decimal, error) {
	k := stockKey{productID, locationID}
	f.qty[k] = f.qty[k].Add(delta)
	return f.qty[k], nil
}

func (f *fakeStock) ListByProduct(productID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for k, q := range f.qty {
		if k.product == productID {
			out = append(out, &entity.Stock{ProductID: k.product, LocationID: k.location, Quantity: q})
		}
	}
	return out, nil
}

type fakeProducts struct {
	byID map[string]*entity.Product
}

func (f *fakeProducts) Create(p *entity.Product) error          { f.byID[p.ID] = p; return nil }
func (f *fakeProducts) GetByID(id string) (*entity.Product, error) {
	return f.byID[id], nil
}
func (f *fakeProducts) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (f *fakeProducts) Update(p *entity.Product) error               { f.byID[p.ID] = p; return nil }
func (f *fakeProducts) List(limit, offset int) ([]*entity.Product, error) {
	return nil, nil
}

// passthroughTx entrega los fakes directamente, sin transacción real.
type passthroughTx struct {
	movements *fakeMovements
	stock     *fakeStock
}

func (t passthroughTx) Run(_ context.Context, fn func(repository.StockMovementRepository, repository.StockRepository) error) error {
	return fn(t.movements, t.stock)
}

func setupMove() (*inventory.MoveUseCase, *fakeStock, *fakeMovements) {
	movements := &fakeMovements{}
	stock := newFakeStock()
	products := &fakeProducts{byID: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "SKU-1", Name: "Tarima"},
	}}
	uc := inventory.NewMoveUseCase(stock, products, passthroughTx{movements: movements, stock: stock})
	return uc, stock, movements
}

func operador() *entity.UserProfile {
	return &entity.UserProfile{ID: "u1", Role: entity.RoleOperador, IsActive: true}
}

func TestMovimiento_EntradaDeMercancia(t *testing.T) {
	uc, stock, movements := setupMove()

	resp, err := uc.Execute(context.Background(), operador(), dto.MoveInventoryRequest{
		ProductID:    "p1",
		ToLocationID: "recepcion",
		Quantity:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ToQuantity)
	assert.True(t, resp.ToQuantity.Equal(decimal.NewFromInt(10)))
	assert.Nil(t, resp.FromQuantity, "una entrada no tiene ubicación de origen")
	assert.True(t, stock.qty[stockKey{"p1", "recepcion"}].Equal(decimal.NewFromInt(10)))
	require.Len(t, movements.created, 1, "toda operación deja asiento en el libro")
	assert.Equal(t, "u1", movements.created[0].UserID)
}

func TestMovimiento_TrasladoEntreUbicaciones(t *testing.T) {
	uc, stock, _ := setupMove()
	_, err := uc.Execute(context.Background(), operador(), dto.MoveInventoryRequest{
		ProductID: "p1", ToLocationID: "recepcion", Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), operador(), dto.MoveInventoryRequest{
		ProductID:      "p1",
		FromLocationID: "recepcion",
		ToLocationID:   "rack-a1",
		Quantity:       decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, resp.FromQuantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, resp.ToQuantity.Equal(decimal.NewFromInt(4)))
	assert.True(t, stock.qty[stockKey{"p1", "recepcion"}].Equal(decimal.NewFromInt(6)))
	assert.True(t, stock.qty[stockKey{"p1", "rack-a1"}].Equal(decimal.NewFromInt(4)))
}

func TestMovimiento_SalidaSinExistenciasFalla(t *testing.T) {
	uc, _, movements := setupMove()

	_, err := uc.Execute(context.Background(), operador(), dto.MoveInventoryRequest{
		ProductID:      "p1",
		FromLocationID: "recepcion",
		Quantity:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, movements.created, "un movimiento rechazado no deja asiento")
}

func TestMovimiento_Validaciones(t *testing.T) {
	uc, _, _ := setupMove()
	ctx := context.Background()

	_, err := uc.Execute(ctx, operador(), dto.MoveInventoryRequest{
		ProductID: "p1", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "se requiere al menos una ubicación")

	_, err = uc.Execute(ctx, operador(), dto.MoveInventoryRequest{
		ProductID: "p1", FromLocationID: "a", ToLocationID: "a", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "origen y destino no pueden coincidir")

	_, err = uc.Execute(ctx, operador(), dto.MoveInventoryRequest{
		ProductID: "p1", ToLocationID: "a", Quantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la cantidad debe ser positiva")

	_, err = uc.Execute(ctx, operador(), dto.MoveInventoryRequest{
		ProductID: "desconocido", ToLocationID: "a", Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_Autorizacion(t *testing.T) {
	uc, _, _ := setupMove()
	ctx := context.Background()
	in := dto.MoveInventoryRequest{ProductID: "p1", ToLocationID: "a", Quantity: decimal.NewFromInt(1)}

	auditor := &entity.UserProfile{ID: "u2", Role: entity.RoleAuditor, IsActive: true}
	_, err := uc.Execute(ctx, auditor, in)
	assert.ErrorIs(t, err, domain.ErrCannotMoveStock, "un auditor no mueve inventario")

	inactivo := operador()
	inactivo.IsActive = false
	_, err = uc.Execute(ctx, inactivo, in)
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}
