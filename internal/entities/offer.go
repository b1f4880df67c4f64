package entities

import "time"

// Offer - ставка водителя на заказ в режиме choose_offer.
// Accepted nil = ожидает решения, true = принята, false = отклонена/закрыта.
type Offer struct {
	ID        int64
	OrderID   int64
	DriverID  int64
	Price     float64
	Accepted  *bool
	CreatedAt time.Time
}

func (o *Offer) Pending() bool {
	return o.Accepted == nil
}

type OfferSubmit struct {
	OrderID  int64
	DriverID int64
	Price    float64
}

// OfferResolution - итог acceptOffer: единственная принятая ставка
// и продвинутый заказ.
type OfferResolution struct {
	OfferID        int64
	OrderID        int64
	DriverID       int64
	Price          float64
	RejectedOffers int64
}
