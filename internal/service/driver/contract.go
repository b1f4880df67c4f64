//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, driverRegister entities.DriverRegister) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)

	// SetOnline выполняет гейт по балансу внутри самого UPDATE:
	// строка проходит только если special или wallet_balance >= minBalance.
	SetOnline(ctx context.Context, id int64, minBalance float64) (*entities.Driver, error)
	SetOffline(ctx context.Context, id int64) (*entities.Driver, error)

	UpdateWalletBalance(ctx context.Context, id int64, balance float64) error
}
