package offer

import "marketplace/internal/entities"

func ToDomain(o *OfferDB) *entities.Offer {
	if o == nil {
		return nil
	}
	return &entities.Offer{
		ID:        o.ID,
		OrderID:   o.OrderID,
		DriverID:  o.DriverID,
		Price:     o.Price,
		Accepted:  o.Accepted,
		CreatedAt: o.CreatedAt,
	}
}

func ToDomainList(offersDB []OfferDB) []entities.Offer {
	if len(offersDB) == 0 {
		return []entities.Offer{}
	}

	result := make([]entities.Offer, len(offersDB))
	for i, offerDB := range offersDB {
		result[i] = *ToDomain(&offerDB)
	}
	return result
}
