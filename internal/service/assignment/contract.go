//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"marketplace/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)

	// Claim - атомарный захват заказа в режиме auto_accept:
	// UPDATE с проверкой status='new' в том же предложении.
	Claim(ctx context.Context, orderID, driverID int64) (*entities.Order, error)
	// AssignFromOffer переводит new/pending заказ в in_progress с водителем
	// ставки и возвращает статус до перехода.
	AssignFromOffer(ctx context.Context, orderID, driverID int64) (*entities.Order, entities.OrderStatusType, error)
	// MarkPending - идемпотентный переход new -> pending при первой ставке.
	MarkPending(ctx context.Context, orderID int64) error
}

type OfferRepository interface {
	// CreateGuarded вставляет ставку только если заказ все еще принимает ставки.
	CreateGuarded(ctx context.Context, offerSubmit entities.OfferSubmit) (*entities.Offer, error)
	GetByID(ctx context.Context, id int64) (*entities.Offer, error)
	ListByOrder(ctx context.Context, orderID int64) ([]entities.Offer, error)

	MarkAccepted(ctx context.Context, offerID int64) error
	MarkRejected(ctx context.Context, offerID int64) error
	CloseSiblings(ctx context.Context, orderID, acceptedOfferID int64) (int64, error)
}

type DriverProvider interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}

type Notifier interface {
	OrderAssigned(ctx context.Context, orderID, driverID int64)
	OfferReceived(ctx context.Context, orderID, offerID int64)
	OrderStatusChanged(ctx context.Context, orderID int64, from, to entities.OrderStatusType)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
