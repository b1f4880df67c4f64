//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderCreate entities.OrderCreate, requestNumber string) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByRequestNumber(ctx context.Context, requestNumber string) (*entities.Order, error)
	ListAvailable(ctx context.Context, service entities.ServiceClass) ([]entities.Order, error)

	UpdateStatus(ctx context.Context, orderID, driverID int64, from []entities.OrderStatusType, to entities.OrderStatusType) (*entities.Order, entities.OrderStatusType, error)
	Cancel(ctx context.Context, orderID int64, allowedFrom []entities.OrderStatusType) (*entities.Order, error)

	CountStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type OfferCloser interface {
	CloseAllPending(ctx context.Context, orderID int64) (int64, error)
}

type RequestNumberFactory interface {
	Next() string
}

type Notifier interface {
	OrderStatusChanged(ctx context.Context, orderID int64, from, to entities.OrderStatusType)
	OrderCancelled(ctx context.Context, orderID int64, actor entities.ActorType)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
