package notifier

import "time"

const (
	eventOrderAssigned      = "order.assigned"
	eventOfferReceived      = "offer.received"
	eventOrderStatusChanged = "order.status.changed"
	eventOrderCancelled     = "order.cancelled"
)

type envelope struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	OccuredAt time.Time `json:"occured_at"`
}

type orderAssignedEvent struct {
	envelope
	OrderID  int64 `json:"order_id"`
	DriverID int64 `json:"driver_id"`
}

type offerReceivedEvent struct {
	envelope
	OrderID int64 `json:"order_id"`
	OfferID int64 `json:"offer_id"`
}

type orderStatusChangedEvent struct {
	envelope
	OrderID int64  `json:"order_id"`
	From    string `json:"from"`
	To      string `json:"to"`
}

type orderCancelledEvent struct {
	envelope
	OrderID int64  `json:"order_id"`
	Actor   string `json:"actor"`
}
