package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/application/usecase"
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
)

// fakeOrderRepo repositorio en memoria para los tests del caso de uso.
type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(o *entity.Order) error {
	for i, existing := range f.orders {
		if existing.ID == o.ID {
			f.orders[i] = o
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeOrderRepo) List() ([]*entity.Order, error) {
	return f.orders, nil
}

func TestOrderCreate_EstadoNuevoYOrigenManual(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.Create(dto.CreateOrderRequest{
		CustomerName: "  Madina  ",
		Channel:      entity.ChannelPhone,
		Total:        180000,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderNew, out.Status, "todo pedido nuevo nace en NEW")
	assert.Equal(t, "MANUAL", out.Source, "el registro desde el panel es origen MANUAL")
	assert.Equal(t, "Madina", out.CustomerName, "el nombre se normaliza sin espacios")
	assert.True(t, len(out.ID) > 2 && out.ID[:2] == "o_", "el ID lleva el prefijo de pedidos")
}

func TestOrderListIncoming_SoloNuevosWebsitePrimero(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{ID: "o1", Status: entity.OrderNew, Source: "MANUAL", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "o2", Status: entity.OrderDelivered, Source: "WEBSITE", CreatedAt: base.Add(4 * time.Hour)},
		{ID: "o3", Status: entity.OrderNew, Source: "WEBSITE", CreatedAt: base.Add(1 * time.Hour)},
		{ID: "o4", Status: entity.OrderNew, Source: "WEBSITE", CreatedAt: base.Add(2 * time.Hour)},
	}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.ListIncoming()
	require.NoError(t, err)
	require.Len(t, out, 3, "solo los pedidos NEW aparecen en la bandeja")

	assert.Equal(t, "o4", out[0].ID, "los pedidos del website van primero, el más reciente arriba")
	assert.Equal(t, "o3", out[1].ID)
	assert.Equal(t, "o1", out[2].ID, "los manuales van después")
}

func TestOrderAccept_TransicionValida(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{ID: "o1", Status: entity.OrderNew},
	}}
	uc := usecase.NewOrderUseCase(repo)

	out, err := uc.Accept("o1")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderAccepted, out.Status)
}

func TestOrderAccept_YaProcesado_Conflicto(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{
		{ID: "o1", Status: entity.OrderAccepted},
	}}
	uc := usecase.NewOrderUseCase(repo)

	_, err := uc.Accept("o1")
	assert.ErrorIs(t, err, domain.ErrConflict,
		"solo los pedidos NEW se pueden aceptar o cancelar")
}

func TestOrderCancel_NoExiste_DevuelveNil(t *testing.T) {
	uc := usecase.NewOrderUseCase(&fakeOrderRepo{})

	out, err := uc.Cancel("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out, "un pedido inexistente devuelve nil, no error")
}
