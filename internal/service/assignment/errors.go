package assignment

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidOfferID  = errors.New("invalid offer id")
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrInvalidPrice    = errors.New("invalid price")

	// ErrAlreadyClaimed - другой водитель успел первым, заказ уже не в new.
	ErrAlreadyClaimed = errors.New("order already claimed")
	// ErrOrderNotClaimable - заказ покинул new/pending (принят, отменен, завершен).
	ErrOrderNotClaimable = errors.New("order is no longer claimable")
	ErrWrongPricingMode  = errors.New("operation not allowed for order pricing mode")

	ErrOfferNotFound = errors.New("offer not found")
	// ErrDuplicateOffer - у водителя уже есть ожидающая ставка на этот заказ.
	ErrDuplicateOffer = errors.New("driver already has a pending offer for the order")
	// ErrOfferAlreadyResolved - ставка уже принята или отклонена.
	ErrOfferAlreadyResolved = errors.New("offer already resolved")

	ErrDriverNotOnline      = errors.New("driver is not online")
	ErrServiceClassMismatch = errors.New("driver service class does not match order")

	ErrNotOrderOwner = errors.New("actor does not own the order")
)
