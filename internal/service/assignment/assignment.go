package assignment

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/tx"
)

// Engine - единственный компонент, которому разрешено менять пару
// (driver_id, status) заказа. Корректность под конкурентными вызовами
// обеспечивается условными UPDATE в репозиториях, не мьютексами:
// каждый переход несет ожидаемый прежний статус в WHERE, ноль строк = конфликт.
type Engine struct {
	orders    OrderRepository
	offers    OfferRepository
	drivers   DriverProvider
	notifier  Notifier
	txManager TxManager
}

func New(
	orders OrderRepository,
	offers OfferRepository,
	drivers DriverProvider,
	notifier Notifier,
	txManager TxManager,
) *Engine {
	return &Engine{
		orders:    orders,
		offers:    offers,
		drivers:   drivers,
		notifier:  notifier,
		txManager: txManager,
	}
}

// ClaimOrder - режим auto_accept: первый пригодный водитель забирает заказ.
// Из N одновременных вызовов ровно один проходит, остальные получают
// ErrAlreadyClaimed и должны перечитать заказ.
func (e *Engine) ClaimOrder(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}

	orderEntity, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order for claim: %w", err)
	}

	// Снапшот-проверка пригодности. Гонку по заказу решает условный
	// UPDATE ниже, здесь достаточно свежего чтения водителя.
	if err := e.checkEligibility(ctx, driverID, orderEntity.Service); err != nil {
		return nil, err
	}

	claimed, err := e.orders.Claim(ctx, orderID, driverID)
	if err != nil {
		if errors.Is(err, ErrAlreadyClaimed) {
			metrics.AssignmentConflicts.WithLabelValues("claim").Inc()
		}
		return nil, fmt.Errorf("claim order: %w", err)
	}

	e.notifier.OrderAssigned(ctx, claimed.ID, driverID)
	e.notifier.OrderStatusChanged(ctx, claimed.ID, entities.OrderNew, entities.OrderInProgress)
	return claimed, nil
}

// SubmitOffer - режим choose_offer: водитель оставляет ставку.
// Первая ставка переводит заказ new -> pending, повторные переход не трогают.
func (e *Engine) SubmitOffer(ctx context.Context, offerSubmit entities.OfferSubmit) (*entities.Offer, error) {
	if offerSubmit.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if offerSubmit.DriverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if offerSubmit.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	orderEntity, err := e.orders.GetByID(ctx, offerSubmit.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order for offer: %w", err)
	}

	if err := e.checkEligibility(ctx, offerSubmit.DriverID, orderEntity.Service); err != nil {
		return nil, err
	}

	var created *entities.Offer
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		created, err = e.offers.CreateGuarded(ctx, offerSubmit)
		if err != nil {
			return fmt.Errorf("create offer: %w", err)
		}

		if err := e.orders.MarkPending(ctx, offerSubmit.OrderID); err != nil {
			return fmt.Errorf("mark order pending: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			return nil, fmt.Errorf("%w: %v", ErrOrderNotClaimable, err)
		}
		return nil, err
	}

	e.notifier.OfferReceived(ctx, created.OrderID, created.ID)
	return created, nil
}

// AcceptOffer решает конкурс ставок: целевая ставка принимается, остальные
// ожидающие закрываются, заказ получает водителя и статус in_progress -
// все одной транзакцией. Любое нарушение предусловий откатывает всё целиком.
func (e *Engine) AcceptOffer(ctx context.Context, offerID, customerID int64) (*entities.OfferResolution, error) {
	if offerID <= 0 {
		return nil, ErrInvalidOfferID
	}

	offerEntity, err := e.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	orderEntity, err := e.orders.GetByID(ctx, offerEntity.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order for offer: %w", err)
	}
	if orderEntity.CustomerID != customerID {
		return nil, ErrNotOrderOwner
	}

	resolution := entities.OfferResolution{
		OfferID:  offerEntity.ID,
		OrderID:  orderEntity.ID,
		DriverID: offerEntity.DriverID,
		Price:    offerEntity.Price,
	}
	priorStatus := orderEntity.Status
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		// статус берем из самого CAS-перехода: между чтением заказа и
		// транзакцией первая ставка могла увести его new -> pending
		_, prior, err := e.orders.AssignFromOffer(ctx, orderEntity.ID, offerEntity.DriverID)
		if err != nil {
			return fmt.Errorf("assign order from offer: %w", err)
		}
		priorStatus = prior

		if err := e.offers.MarkAccepted(ctx, offerEntity.ID); err != nil {
			return fmt.Errorf("accept offer: %w", err)
		}

		rejected, err := e.offers.CloseSiblings(ctx, orderEntity.ID, offerEntity.ID)
		if err != nil {
			return fmt.Errorf("close sibling offers: %w", err)
		}
		resolution.RejectedOffers = rejected
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOfferAlreadyResolved) || errors.Is(err, ErrOrderNotClaimable) {
			metrics.AssignmentConflicts.WithLabelValues("accept").Inc()
			return nil, err
		}
		// прерванная Serializable-транзакция - тот же проигрыш гонки,
		// что и ноль строк в CAS: заказ достался конкурентному принятию
		if errors.Is(err, tx.ErrSerialization) {
			metrics.AssignmentConflicts.WithLabelValues("accept").Inc()
			return nil, fmt.Errorf("%w: %v", ErrOrderNotClaimable, err)
		}
		return nil, err
	}

	e.notifier.OrderAssigned(ctx, resolution.OrderID, resolution.DriverID)
	e.notifier.OrderStatusChanged(ctx, resolution.OrderID, priorStatus, entities.OrderInProgress)
	return &resolution, nil
}

// RejectOffer закрывает одну ожидающую ставку, заказ не трогает.
func (e *Engine) RejectOffer(ctx context.Context, offerID, customerID int64) error {
	if offerID <= 0 {
		return ErrInvalidOfferID
	}

	offerEntity, err := e.offers.GetByID(ctx, offerID)
	if err != nil {
		return fmt.Errorf("get offer: %w", err)
	}

	orderEntity, err := e.orders.GetByID(ctx, offerEntity.OrderID)
	if err != nil {
		return fmt.Errorf("get order for offer: %w", err)
	}
	if orderEntity.CustomerID != customerID {
		return ErrNotOrderOwner
	}

	if err := e.offers.MarkRejected(ctx, offerEntity.ID); err != nil {
		return fmt.Errorf("reject offer: %w", err)
	}
	return nil
}

// ListOrderOffers - ставки заказа для его владельца.
func (e *Engine) ListOrderOffers(ctx context.Context, orderID, customerID int64) ([]entities.Offer, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if orderEntity.CustomerID != customerID {
		return nil, ErrNotOrderOwner
	}

	offers, err := e.offers.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

func (e *Engine) checkEligibility(ctx context.Context, driverID int64, required entities.ServiceClass) error {
	driverEntity, err := e.drivers.GetDriver(ctx, driverID)
	if err != nil {
		return fmt.Errorf("get driver: %w", err)
	}

	if driverEntity.Status != entities.DriverOnline {
		return fmt.Errorf("driver %d: %w", driverID, ErrDriverNotOnline)
	}
	if !driverEntity.Special && !driverEntity.Service.Matches(required) {
		return fmt.Errorf("driver %d: %w", driverID, ErrServiceClassMismatch)
	}
	return nil
}
