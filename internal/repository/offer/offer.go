package offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/assignment"
	"marketplace/internal/service/order"
)

const offerColumns = `id, order_id, driver_id, price, accepted, created_at`

// Констрейнты из миграций: частичные уникальные индексы на offers.
const (
	uqAcceptedPerOrder = "uq_offers_accepted_per_order"
	uqPendingPerDriver = "uq_offers_pending_per_driver"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateGuarded: вставка проходит только если заказ прямо сейчас принимает
// ставки - предусловие и эффект в одном предложении INSERT ... SELECT.
func (r *Repository) CreateGuarded(ctx context.Context, offerSubmit entities.OfferSubmit) (*entities.Offer, error) {
	query := `
		INSERT INTO offers (order_id, driver_id, price)
		SELECT o.id, $2, $3
		FROM orders o
		WHERE o.id = $1 AND o.status IN ('new', 'pending') AND o.pricing_option = 'choose_offer'
		RETURNING ` + offerColumns

	var offerDB OfferDB
	err := r.querier.QueryRow(ctx, query, offerSubmit.OrderID, offerSubmit.DriverID, offerSubmit.Price).Scan(
		&offerDB.ID,
		&offerDB.OrderID,
		&offerDB.DriverID,
		&offerDB.Price,
		&offerDB.Accepted,
		&offerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifySubmitFailure(ctx, offerSubmit.OrderID)
		}
		if repository.IsPgConstraint(err, uqPendingPerDriver) {
			return nil, assignment.ErrDuplicateOffer
		}
		return nil, fmt.Errorf("unexpected offer repository create error: %w", err)
	}

	return ToDomain(&offerDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE id = $1`

	var offerDB OfferDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&offerDB.ID,
		&offerDB.OrderID,
		&offerDB.DriverID,
		&offerDB.Price,
		&offerDB.Accepted,
		&offerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected offer repository getbyid error: %w", err)
	}

	return ToDomain(&offerDB), nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID int64) ([]entities.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers WHERE order_id = $1 ORDER BY created_at ASC, id ASC`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}
	defer rows.Close()

	offersDB := make([]OfferDB, 0, 8)
	for rows.Next() {
		var offerDB OfferDB
		err := rows.Scan(
			&offerDB.ID,
			&offerDB.OrderID,
			&offerDB.DriverID,
			&offerDB.Price,
			&offerDB.Accepted,
			&offerDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
		}
		offersDB = append(offersDB, offerDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository list error: %w", err)
	}

	return ToDomainList(offersDB), nil
}

// MarkAccepted - CAS по accepted IS NULL; частичный уникальный индекс
// дополнительно гарантирует не больше одной принятой ставки на заказ.
func (r *Repository) MarkAccepted(ctx context.Context, offerID int64) error {
	query := `
		UPDATE offers
		SET accepted = TRUE
		WHERE id = $1 AND accepted IS NULL
	`

	result, err := r.querier.Exec(ctx, query, offerID)
	if err != nil {
		if repository.IsPgConstraint(err, uqAcceptedPerOrder) {
			return assignment.ErrOrderNotClaimable
		}
		return fmt.Errorf("unexpected offer repository accept error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.classifyResolveFailure(ctx, offerID)
	}
	return nil
}

func (r *Repository) MarkRejected(ctx context.Context, offerID int64) error {
	query := `
		UPDATE offers
		SET accepted = FALSE
		WHERE id = $1 AND accepted IS NULL
	`

	result, err := r.querier.Exec(ctx, query, offerID)
	if err != nil {
		return fmt.Errorf("unexpected offer repository reject error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return r.classifyResolveFailure(ctx, offerID)
	}
	return nil
}

func (r *Repository) CloseSiblings(ctx context.Context, orderID, acceptedOfferID int64) (int64, error) {
	query := `
		UPDATE offers
		SET accepted = FALSE
		WHERE order_id = $1 AND id != $2 AND accepted IS NULL
	`

	result, err := r.querier.Exec(ctx, query, orderID, acceptedOfferID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository close siblings error: %w", err)
	}

	return result.RowsAffected(), nil
}

// CloseAllPending закрывает (не удаляет) ожидающие ставки отмененного заказа.
func (r *Repository) CloseAllPending(ctx context.Context, orderID int64) (int64, error) {
	query := `
		UPDATE offers
		SET accepted = FALSE
		WHERE order_id = $1 AND accepted IS NULL
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected offer repository close pending error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) classifySubmitFailure(ctx context.Context, orderID int64) error {
	var pricing, status string
	err := r.querier.QueryRow(ctx, `SELECT pricing_option, status FROM orders WHERE id = $1`, orderID).
		Scan(&pricing, &status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected offer repository classify error: %w", err)
	}

	if entities.PricingOptionType(pricing) != entities.PricingChooseOffer {
		return assignment.ErrWrongPricingMode
	}
	return assignment.ErrOrderNotClaimable
}

func (r *Repository) classifyResolveFailure(ctx context.Context, offerID int64) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM offers WHERE id = $1)`, offerID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected offer repository classify error: %w", err)
	}

	if !exists {
		return assignment.ErrOfferNotFound
	}
	return assignment.ErrOfferAlreadyResolved
}
