package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/tx"
)

var (
	customerCancellableFrom = []entities.OrderStatusType{
		entities.OrderNew,
		entities.OrderPending,
	}
	adminCancellableFrom = []entities.OrderStatusType{
		entities.OrderNew,
		entities.OrderPending,
		entities.OrderInProgress,
		entities.OrderPickedUp,
	}
)

type Service struct {
	repository    Repository
	offers        OfferCloser
	numberFactory RequestNumberFactory
	notifier      Notifier
	txManager     TxManager
}

func New(
	repository Repository,
	offers OfferCloser,
	numberFactory RequestNumberFactory,
	notifier Notifier,
	txManager TxManager,
) *Service {
	return &Service{
		repository:    repository,
		offers:        offers,
		numberFactory: numberFactory,
		notifier:      notifier,
		txManager:     txManager,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if orderCreate.CustomerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if !isValidAddress(orderCreate.Pickup.Address) {
		return nil, ErrInvalidPickupAddress
	}
	if !isValidAddress(orderCreate.Dropoff.Address) {
		return nil, ErrInvalidDropoffAddress
	}
	if orderCreate.Service.Category == "" {
		return nil, ErrInvalidServiceClass
	}
	if orderCreate.TotalAmount < 0 || orderCreate.DriverShare < 0 || orderCreate.DriverShare > orderCreate.TotalAmount {
		return nil, ErrInvalidAmount
	}
	if orderCreate.PaymentMethod == "" {
		orderCreate.PaymentMethod = entities.DefaultPaymentMethod
	}
	if !isValidPaymentMethod(orderCreate.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}
	if !isValidPricingOption(orderCreate.PricingOption) {
		return nil, ErrInvalidPricingOption
	}
	if !isValidSchedule(orderCreate.ScheduledFor, time.Now().UTC()) {
		return nil, fmt.Errorf("scheduled time is in the past: %w", ErrMissingRequiredFields)
	}

	created, err := s.repository.Create(ctx, orderCreate, s.numberFactory.Next())
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Service) GetOrderByRequestNumber(ctx context.Context, requestNumber string) (*entities.Order, error) {
	if strings.TrimSpace(requestNumber) == "" {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByRequestNumber(ctx, requestNumber)
	if err != nil {
		return nil, fmt.Errorf("get order by request number: %w", err)
	}

	return orderEntity, nil
}

// ListAvailableOrders - лента заказов для водителя: new/pending его класса.
func (s *Service) ListAvailableOrders(ctx context.Context, service entities.ServiceClass) ([]entities.Order, error) {
	orders, err := s.repository.ListAvailable(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}

	return orders, nil
}

// AdvanceStatus двигает назначенный заказ вперед: in_progress -> picked_up,
// in_progress/picked_up -> delivered. picked_up опционален, не все типы услуг
// его используют. Двигать может только назначенный водитель.
func (s *Service) AdvanceStatus(ctx context.Context, orderID, driverID int64, to entities.OrderStatusType) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if driverID <= 0 {
		return nil, fmt.Errorf("driver id: %w", ErrMissingRequiredFields)
	}

	var from []entities.OrderStatusType
	switch to {
	case entities.OrderPickedUp:
		from = []entities.OrderStatusType{entities.OrderInProgress}
	case entities.OrderDelivered:
		from = []entities.OrderStatusType{entities.OrderInProgress, entities.OrderPickedUp}
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatusStep, to)
	}

	updated, prior, err := s.repository.UpdateStatus(ctx, orderID, driverID, from, to)
	if err != nil {
		return nil, fmt.Errorf("advance order status: %w", err)
	}

	s.notifier.OrderStatusChanged(ctx, updated.ID, prior, to)
	return updated, nil
}

// CountStaleOrders считает заказы, которые висят в new/pending дольше порога.
// Заказы не отменяются автоматически: просрочка - сигнал для диспетчера,
// решение об отмене остается за ним.
func (s *Service) CountStaleOrders(ctx context.Context, olderThan time.Duration) (int64, error) {
	threshold := time.Now().UTC().Add(-olderThan)

	count, err := s.repository.CountStale(ctx, threshold)
	if err != nil {
		return 0, fmt.Errorf("count stale orders: %w", err)
	}

	return count, nil
}

// CancelOrder: заказчик может отменить только пока водитель не взялся
// (new/pending), администратор - из любого нетерминального статуса.
// Незакрытые ставки помечаются отклоненными в той же транзакции.
func (s *Service) CancelOrder(ctx context.Context, orderID int64, actor entities.ActorType, actorID int64) (*entities.OrderCancellation, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	allowedFrom := adminCancellableFrom
	if actor == entities.ActorCustomer {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return nil, fmt.Errorf("cancel order: %w", err)
		}
		if orderEntity.CustomerID != actorID {
			return nil, ErrNotOrderOwner
		}
		allowedFrom = customerCancellableFrom
	}

	cancellation := entities.OrderCancellation{
		OrderID: orderID,
		Actor:   actor,
	}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cancelled, err := s.repository.Cancel(ctx, orderID, allowedFrom)
		if err != nil {
			return fmt.Errorf("cancel order: %w", err)
		}

		closed, err := s.offers.CloseAllPending(ctx, cancelled.ID)
		if err != nil {
			return fmt.Errorf("close pending offers: %w", err)
		}
		cancellation.ClosedOffers = closed
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %v", ErrOrderConflict, err)
		}
		return nil, err
	}

	s.notifier.OrderCancelled(ctx, orderID, actor)
	return &cancellation, nil
}
