package offer

import "time"

type OfferDB struct {
	ID        int64
	OrderID   int64
	DriverID  int64
	Price     float64
	Accepted  *bool
	CreatedAt time.Time
}
