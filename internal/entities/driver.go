package entities

import "time"

type Driver struct {
	ID            int64
	UserID        int64
	Status        DriverStatusType
	Service       ServiceClass
	WalletBalance float64
	Special       bool
	VehicleID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DriverStatusType string

const (
	// DriverPending - зарегистрирован, ждет одобрения администратора.
	DriverPending DriverStatusType = "pending"
	DriverOnline  DriverStatusType = "online"
	DriverOffline DriverStatusType = "offline"
)

const DefaultDriverStatus = DriverPending

func (t DriverStatusType) String() string {
	return string(t)
}

func (t DriverStatusType) Approved() bool {
	return t == DriverOnline || t == DriverOffline
}

// ServiceClass - специализация водителя и требуемая категория заказа.
// Сравнивается структурно, не свободным текстом.
type ServiceClass struct {
	Category   string
	SubService string
}

func (c ServiceClass) Matches(other ServiceClass) bool {
	return c.Category == other.Category && c.SubService == other.SubService
}

func (c ServiceClass) Zero() bool {
	return c.Category == "" && c.SubService == ""
}

// Eligible: предикат пригодности водителя для заказа, общий для обоих
// режимов назначения. special обходит проверку специализации, но не онлайна.
func (d *Driver) Eligible(required ServiceClass) bool {
	if d.Status != DriverOnline {
		return false
	}
	return d.Special || d.Service.Matches(required)
}

type DriverModify struct {
	ID            *int64
	Status        *DriverStatusType
	Service       *ServiceClass
	WalletBalance *float64
	Special       *bool
	VehicleID     *string
}

type DriverRegister struct {
	UserID    int64
	Service   ServiceClass
	VehicleID *string
}
