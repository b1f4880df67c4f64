package entities

import "time"

type Order struct {
	ID            int64
	RequestNumber string
	CustomerID    int64
	Service       ServiceClass
	Pickup        Location
	Dropoff       Location
	ScheduledFor  *time.Time
	TotalAmount   float64
	DriverShare   float64
	PaymentMethod PaymentMethodType
	Notes         string
	PricingOption PricingOptionType
	Status        OrderStatusType
	DriverID      *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Location struct {
	Address string
	Lat     *float64
	Lng     *float64
}

type OrderStatusType string

const (
	OrderNew        OrderStatusType = "new"
	OrderPending    OrderStatusType = "pending"
	OrderInProgress OrderStatusType = "in_progress"
	OrderPickedUp   OrderStatusType = "picked_up"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal значит что заказ больше не меняется.
func (s OrderStatusType) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Assigned отражает инвариант: driver_id IS NOT NULL <=> статус из назначенных.
func (s OrderStatusType) Assigned() bool {
	switch s {
	case OrderInProgress, OrderPickedUp, OrderDelivered:
		return true
	default:
		return false
	}
}

// Claimable: заказ еще виден водителям и может получить назначение.
func (s OrderStatusType) Claimable() bool {
	return s == OrderNew || s == OrderPending
}

type PricingOptionType string

const (
	PricingAutoAccept  PricingOptionType = "auto_accept"
	PricingChooseOffer PricingOptionType = "choose_offer"
)

func (p PricingOptionType) String() string {
	return string(p)
}

type PaymentMethodType string

const (
	PaymentCash   PaymentMethodType = "cash"
	PaymentWallet PaymentMethodType = "wallet"
	PaymentCard   PaymentMethodType = "card"
)

const DefaultPaymentMethod = PaymentCash

func (p PaymentMethodType) String() string {
	return string(p)
}

type ActorType string

const (
	ActorCustomer ActorType = "customer"
	ActorAdmin    ActorType = "admin"
)

func (a ActorType) String() string {
	return string(a)
}

type OrderCreate struct {
	CustomerID    int64
	Service       ServiceClass
	Pickup        Location
	Dropoff       Location
	ScheduledFor  *time.Time
	TotalAmount   float64
	DriverShare   float64
	PaymentMethod PaymentMethodType
	Notes         string
	PricingOption PricingOptionType
}

type OrderCancellation struct {
	OrderID      int64
	Actor        ActorType
	ClosedOffers int64
}
