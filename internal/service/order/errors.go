package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidPickupAddress  = errors.New("invalid pickup address")
	ErrInvalidDropoffAddress = errors.New("invalid dropoff address")
	ErrInvalidServiceClass   = errors.New("invalid service class")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidPricingOption  = errors.New("invalid pricing option")
	ErrInvalidStatusStep     = errors.New("invalid status step")

	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderConflict - переход не прошел: строка уже не в ожидаемом статусе.
	ErrOrderConflict = errors.New("order status conflict")
	ErrNotOrderOwner = errors.New("actor does not own the order")
)
