package service

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
)

type OrderService struct {
	repo      OrderRepository
	carts     CartRepository
	publisher EventPublisher
	qrEncoder QRGenerator
	baseURL   string
}

func NewOrderService(repo OrderRepository, carts CartRepository, publisher EventPublisher, qr QRGenerator, baseURL string) *OrderService {
	return &OrderService{
		repo:      repo,
		carts:     carts,
		publisher: publisher,
		qrEncoder: qr,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Place turns the session's cart into a Pending order. The cart is emptied
// if and only if the order was recorded.
func (s *OrderService) Place(ctx context.Context, session, customerName string, orderType domain.OrderType) (*domain.Order, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if orderType == "" {
		orderType = domain.OrderTypeTakeaway
	}
	if orderType != domain.OrderTypeTakeaway && orderType != domain.OrderTypeDineIn {
		return nil, fmt.Errorf("%w: unknown order type %q", ErrValidation, orderType)
	}

	var placed domain.Order
	err := s.carts.Checkout(session, func(lines []domain.CartLine) error {
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		order := domain.Order{
			CustomerName: customerName,
			OrderType:    orderType,
			Items:        lines,
			Total:        domain.CartTotal(lines),
			Status:       domain.OrderPending,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.repo.CreateOrder(&order); err != nil {
			return err
		}
		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("order_id", placed.ID).Int64("total", placed.Total).Int("lines", len(placed.Items)).Msg("order placed")

	eventLines := make([]domain.EventLine, 0, len(placed.Items))
	for _, line := range placed.Items {
		eventLines = append(eventLines, domain.EventLine{MenuItemID: line.MenuItem.ID, Quantity: line.Quantity})
	}
	s.publish(ctx, domain.KafkaMessage{
		Type:      domain.EventOrderPlaced,
		OrderID:   placed.ID,
		Status:    string(placed.Status),
		Lines:     eventLines,
		Total:     placed.Total,
		Timestamp: placed.CreatedAt,
	})

	return &placed, nil
}

func (s *OrderService) Advance(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", ErrValidation, next)
	}

	order, err := s.repo.GetOrder(strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, next)
	}

	affected, err := s.repo.UpdateStatusGuard(order.ID, order.Status, next)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: order %s changed concurrently", ErrInvalidTransition, order.ID)
	}

	previous := order.Status
	order.Status = next
	log.Info().Str("order_id", order.ID).Str("from", string(previous)).Str("to", string(next)).Msg("order status changed")

	s.publish(ctx, domain.KafkaMessage{
		Type:      domain.EventOrderStatusChanged,
		OrderID:   order.ID,
		Status:    string(next),
		Timestamp: time.Now().UTC(),
	})

	return order, nil
}

func (s *OrderService) Find(id string) (*domain.Order, error) {
	return s.repo.GetOrder(strings.TrimSpace(id))
}

func (s *OrderService) List() []domain.Order {
	return s.repo.ListOrders()
}

// Active returns Pending and Preparing orders, oldest first.
func (s *OrderService) Active() []domain.Order {
	var active []domain.Order
	for _, order := range s.repo.ListOrders() {
		if order.Status.Active() {
			active = append(active, order)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].CreatedAt.Before(active[j].CreatedAt)
	})
	return active
}

func (s *OrderService) QRCode(id string) ([]byte, error) {
	order, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	return s.qrEncoder.Generate(s.TrackingURL(order.ID))
}

func (s *OrderService) TrackingURL(id string) string {
	return s.baseURL + "/order-status?id=" + url.QueryEscape(id)
}

func (s *OrderService) publish(ctx context.Context, msg domain.KafkaMessage) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(ctx, msg); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Str("key", msg.Key()).Msg("failed to publish event")
	}
}
