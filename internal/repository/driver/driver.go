package driver

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/driver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const driverColumns = `id, user_id, status, service_category, sub_service,
		wallet_balance, special, vehicle_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, driverRegister entities.DriverRegister) (int64, error) {
	query := `
		INSERT INTO drivers (user_id, status, service_category, sub_service, vehicle_id)
		VALUES ($1, 'pending', $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		driverRegister.UserID,
		driverRegister.Service.Category,
		driverRegister.Service.SubService,
		driverRegister.VehicleID,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, driver.ErrConflict
		}
		return 0, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	driverModifyDB := FromDomainModify(&driverModify)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyDB.Status != nil {
		builder = builder.Set("status", driverModifyDB.Status)
	}
	if driverModifyDB.Category != nil {
		builder = builder.Set("service_category", driverModifyDB.Category)
	}
	if driverModifyDB.SubService != nil {
		builder = builder.Set("sub_service", driverModifyDB.SubService)
	}
	if driverModifyDB.WalletBalance != nil {
		builder = builder.Set("wallet_balance", driverModifyDB.WalletBalance)
	}
	if driverModifyDB.Special != nil {
		builder = builder.Set("special", driverModifyDB.Special)
	}
	if driverModifyDB.VehicleID != nil {
		builder = builder.Set("vehicle_id", driverModifyDB.VehicleID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": driverModifyDB.ID}).
		Suffix("RETURNING " + driverColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, driver.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverDB), nil
}

// SetOnline: гейт по балансу - часть WHERE, оценивается по текущей строке
// в момент записи, а не по более раннему чтению.
func (r *Repository) SetOnline(ctx context.Context, id int64, minBalance float64) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET status = 'online', updated_at = NOW()
		WHERE id = $1
		  AND status IN ('online', 'offline')
		  AND (special OR wallet_balance >= $2)
		RETURNING ` + driverColumns

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, id, minBalance))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyOnlineFailure(ctx, id)
		}
		return nil, fmt.Errorf("unexpected driver repository set online error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) SetOffline(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET status = 'offline', updated_at = NOW()
		WHERE id = $1 AND status IN ('online', 'offline')
		RETURNING ` + driverColumns

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyToggleFailure(ctx, id)
		}
		return nil, fmt.Errorf("unexpected driver repository set offline error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) UpdateWalletBalance(ctx context.Context, id int64, balance float64) error {
	query := `
		UPDATE drivers
		SET wallet_balance = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, balance)
	if err != nil {
		return fmt.Errorf("unexpected driver repository wallet update error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return driver.ErrDriverNotFound
	}
	return nil
}

func (r *Repository) classifyOnlineFailure(ctx context.Context, id int64) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM drivers WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return driver.ErrDriverNotFound
		}
		return fmt.Errorf("unexpected driver repository classify error: %w", err)
	}

	if !entities.DriverStatusType(status).Approved() {
		return driver.ErrDriverNotApproved
	}
	return driver.ErrInsufficientBalance
}

func (r *Repository) classifyToggleFailure(ctx context.Context, id int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM drivers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected driver repository classify error: %w", err)
	}

	if !exists {
		return driver.ErrDriverNotFound
	}
	return driver.ErrDriverNotApproved
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverDB DriverDB
	err := row.Scan(
		&driverDB.ID,
		&driverDB.UserID,
		&driverDB.Status,
		&driverDB.Category,
		&driverDB.SubService,
		&driverDB.WalletBalance,
		&driverDB.Special,
		&driverDB.VehicleID,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverDB, nil
}
