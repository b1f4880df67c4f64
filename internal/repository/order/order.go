package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/assignment"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, request_number, customer_id, service_category, sub_service,
		pickup_address, pickup_lat, pickup_lng, dropoff_address, dropoff_lat, dropoff_lng,
		scheduled_for, total_amount, driver_share, payment_method, notes,
		pricing_option, status, driver_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate, requestNumber string) (*entities.Order, error) {
	query := `
		INSERT INTO orders (
			request_number, customer_id, service_category, sub_service,
			pickup_address, pickup_lat, pickup_lng, dropoff_address, dropoff_lat, dropoff_lng,
			scheduled_for, total_amount, driver_share, payment_method, notes,
			pricing_option, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 'new')
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		requestNumber,
		orderCreate.CustomerID,
		orderCreate.Service.Category,
		orderCreate.Service.SubService,
		orderCreate.Pickup.Address,
		orderCreate.Pickup.Lat,
		orderCreate.Pickup.Lng,
		orderCreate.Dropoff.Address,
		orderCreate.Dropoff.Lat,
		orderCreate.Dropoff.Lng,
		orderCreate.ScheduledFor,
		orderCreate.TotalAmount,
		orderCreate.DriverShare,
		orderCreate.PaymentMethod.String(),
		orderCreate.Notes,
		orderCreate.PricingOption.String(),
	)

	orderDB, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByRequestNumber(ctx context.Context, requestNumber string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE request_number = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, requestNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by request number error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// ListAvailable - лента claimable заказов. Пустой класс (special-водитель)
// снимает фильтр по специализации.
func (r *Repository) ListAvailable(ctx context.Context, service entities.ServiceClass) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"status": []string{
			entities.OrderNew.String(),
			entities.OrderPending.String(),
		}}).
		OrderBy("created_at ASC")

	if !service.Zero() {
		builder = builder.Where(sq.Eq{
			"service_category": service.Category,
			"sub_service":      service.SubService,
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		ordersDB = append(ordersDB, *orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

// Claim - весь предикат гонки в WHERE: ноль строк значит что заказ уже не
// свободный. Причина уточняется отдельным чтением, но исход решает UPDATE.
func (r *Repository) Claim(ctx context.Context, orderID, driverID int64) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET driver_id = $2, status = 'in_progress', updated_at = NOW()
		WHERE id = $1 AND status = 'new' AND pricing_option = 'auto_accept'
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyClaimFailure(ctx, orderID, entities.PricingAutoAccept, assignment.ErrAlreadyClaimed)
		}
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// AssignFromOffer - CAS-переход new/pending -> in_progress при принятии
// ставки. Возвращает статус до перехода: к моменту принятия заказ мог уже
// уйти из new в pending первой ставкой.
func (r *Repository) AssignFromOffer(ctx context.Context, orderID, driverID int64) (*entities.Order, entities.OrderStatusType, error) {
	query := `
		UPDATE orders
		SET driver_id = $2, status = 'in_progress', updated_at = NOW()
		FROM (SELECT id AS prev_id, status AS prev_status FROM orders WHERE id = $1) prev
		WHERE orders.id = prev.prev_id
		  AND orders.status IN ('new', 'pending')
		  AND orders.pricing_option = 'choose_offer'
		RETURNING ` + orderColumns + `, prev.prev_status`

	var orderDB OrderDB
	var prior string
	err := r.querier.QueryRow(ctx, query, orderID, driverID).Scan(
		orderFields(&orderDB, &prior)...,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", r.classifyClaimFailure(ctx, orderID, entities.PricingChooseOffer, assignment.ErrOrderNotClaimable)
		}
		return nil, "", fmt.Errorf("unexpected order repository assign error: %w", err)
	}

	return ToDomain(&orderDB), entities.OrderStatusType(prior), nil
}

// MarkPending идемпотентен: ноль строк означает что заказ уже pending
// (или выбыл - тогда страхует guarded-вставка ставки в той же транзакции).
func (r *Repository) MarkPending(ctx context.Context, orderID int64) error {
	query := `
		UPDATE orders
		SET status = 'pending', updated_at = NOW()
		WHERE id = $1 AND status = 'new'
	`

	_, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark pending error: %w", err)
	}
	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID, driverID int64, from []entities.OrderStatusType, to entities.OrderStatusType) (*entities.Order, entities.OrderStatusType, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		FROM (SELECT id AS prev_id, status AS prev_status FROM orders WHERE id = $1) prev
		WHERE orders.id = prev.prev_id
		  AND orders.status = ANY($3)
		  AND orders.driver_id = $4
		RETURNING ` + orderColumns + `, prev.prev_status`

	var orderDB OrderDB
	var prior string
	err := r.querier.QueryRow(ctx, query, orderID, to.String(), statusStrings(from), driverID).Scan(
		orderFields(&orderDB, &prior)...,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", r.classifyStatusFailure(ctx, orderID, driverID)
		}
		return nil, "", fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderDB), entities.OrderStatusType(prior), nil
}

// Cancel также обнуляет driver_id: у отмененного заказа водителя нет
// (driver_id IS NOT NULL строго эквивалентно назначенному статусу).
func (r *Repository) Cancel(ctx context.Context, orderID int64, allowedFrom []entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = 'cancelled', driver_id = NULL, updated_at = NOW()
		WHERE id = $1 AND status = ANY($2)
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, statusStrings(allowedFrom)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyCancelFailure(ctx, orderID)
		}
		return nil, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) CountStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE status IN ('new', 'pending') AND created_at < $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, olderThan).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count stale error: %w", err)
	}

	return count, nil
}

// classifyClaimFailure различает not found / неверный режим / конфликт.
// Диагностическое чтение: исход уже решен нулем строк условного UPDATE.
func (r *Repository) classifyClaimFailure(ctx context.Context, orderID int64, wantPricing entities.PricingOptionType, conflictErr error) error {
	var pricing, status string
	err := r.querier.QueryRow(ctx, `SELECT pricing_option, status FROM orders WHERE id = $1`, orderID).
		Scan(&pricing, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository classify error: %w", err)
	}

	if entities.PricingOptionType(pricing) != wantPricing {
		return assignment.ErrWrongPricingMode
	}
	return conflictErr
}

func (r *Repository) classifyStatusFailure(ctx context.Context, orderID, driverID int64) error {
	var status string
	var currentDriver *int64
	err := r.querier.QueryRow(ctx, `SELECT status, driver_id FROM orders WHERE id = $1`, orderID).
		Scan(&status, &currentDriver)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository classify error: %w", err)
	}

	if currentDriver != nil && *currentDriver != driverID {
		return order.ErrNotOrderOwner
	}
	return fmt.Errorf("%w: order %d is %s", order.ErrOrderConflict, orderID, status)
}

func (r *Repository) classifyCancelFailure(ctx context.Context, orderID int64) error {
	var status string
	err := r.querier.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected order repository classify error: %w", err)
	}

	return fmt.Errorf("%w: order %d is %s", order.ErrOrderConflict, orderID, status)
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(orderFields(&orderDB)...)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

// orderFields отдает приемники Scan в порядке orderColumns,
// опционально с дополнительными приемниками в хвосте.
func orderFields(o *OrderDB, extra ...interface{}) []interface{} {
	fields := []interface{}{
		&o.ID,
		&o.RequestNumber,
		&o.CustomerID,
		&o.Category,
		&o.SubService,
		&o.PickupAddress,
		&o.PickupLat,
		&o.PickupLng,
		&o.DropoffAddr,
		&o.DropoffLat,
		&o.DropoffLng,
		&o.ScheduledFor,
		&o.TotalAmount,
		&o.DriverShare,
		&o.PaymentMethod,
		&o.Notes,
		&o.PricingOption,
		&o.Status,
		&o.DriverID,
		&o.CreatedAt,
		&o.UpdatedAt,
	}
	return append(fields, extra...)
}
