package driver

import "time"

type DriverDB struct {
	ID            int64
	UserID        int64
	Status        string
	Category      string
	SubService    string
	WalletBalance float64
	Special       bool
	VehicleID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverModifyDB struct {
	ID            *int64
	Status        *string
	Category      *string
	SubService    *string
	WalletBalance *float64
	Special       *bool
	VehicleID     *string
}
