package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ruxshona/bakery-api/internal/application/dto"
	"github.com/ruxshona/bakery-api/internal/domain"
	"github.com/ruxshona/bakery-api/internal/domain/entity"
	"github.com/ruxshona/bakery-api/internal/domain/repository"
)

// OrderUseCase recepción de pedidos: registro manual, listado de entrantes y
// transición aceptar/cancelar.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create registra un pedido manual en estado NEW.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	order := &entity.Order{
		ID:           "o_" + uuid.New().String(),
		CustomerName: strings.TrimSpace(in.CustomerName),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		Channel:      in.Channel,
		Source:       "MANUAL",
		Status:       entity.OrderNew,
		Total:        in.Total,
		Note:         strings.TrimSpace(in.Note),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// ListIncoming devuelve los pedidos en estado NEW: primero los que llegan del
// website, luego el resto, ambos por creación descendente.
func (uc *OrderUseCase) ListIncoming() ([]dto.OrderResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	incoming := make([]*entity.Order, 0, len(list))
	for _, o := range list {
		if o.Status == entity.OrderNew {
			incoming = append(incoming, o)
		}
	}
	sort.SliceStable(incoming, func(i, j int) bool {
		iWeb := strings.EqualFold(incoming[i].Source, entity.ChannelWebsite)
		jWeb := strings.EqualFold(incoming[j].Source, entity.ChannelWebsite)
		if iWeb != jWeb {
			return iWeb
		}
		return incoming[i].CreatedAt.After(incoming[j].CreatedAt)
	})
	items := make([]dto.OrderResponse, 0, len(incoming))
	for _, o := range incoming {
		items = append(items, *toOrderResponse(o))
	}
	return items, nil
}

// Accept pasa un pedido NEW a ACCEPTED.
func (uc *OrderUseCase) Accept(id string) (*dto.OrderResponse, error) {
	return uc.transition(id, entity.OrderAccepted)
}

// Cancel pasa un pedido NEW a CANCELED.
func (uc *OrderUseCase) Cancel(id string) (*dto.OrderResponse, error) {
	return uc.transition(id, entity.OrderCanceled)
}

func (uc *OrderUseCase) transition(id, status string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	// Solo los pedidos entrantes se aceptan o cancelan desde esta pantalla.
	if order.Status != entity.OrderNew {
		return nil, domain.ErrConflict
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Channel:      o.Channel,
		Source:       o.Source,
		Status:       o.Status,
		Total:        o.Total,
		Note:         o.Note,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
