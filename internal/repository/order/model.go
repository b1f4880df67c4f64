package order

import "time"

type OrderDB struct {
	ID            int64
	RequestNumber string
	CustomerID    int64
	Category      string
	SubService    string
	PickupAddress string
	PickupLat     *float64
	PickupLng     *float64
	DropoffAddr   string
	DropoffLat    *float64
	DropoffLng    *float64
	ScheduledFor  *time.Time
	TotalAmount   float64
	DriverShare   float64
	PaymentMethod string
	Notes         string
	PricingOption string
	Status        string
	DriverID      *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
