package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:            o.ID,
		RequestNumber: o.RequestNumber,
		CustomerID:    o.CustomerID,
		Service: entities.ServiceClass{
			Category:   o.Category,
			SubService: o.SubService,
		},
		Pickup: entities.Location{
			Address: o.PickupAddress,
			Lat:     o.PickupLat,
			Lng:     o.PickupLng,
		},
		Dropoff: entities.Location{
			Address: o.DropoffAddr,
			Lat:     o.DropoffLat,
			Lng:     o.DropoffLng,
		},
		ScheduledFor:  o.ScheduledFor,
		TotalAmount:   o.TotalAmount,
		DriverShare:   o.DriverShare,
		PaymentMethod: entities.PaymentMethodType(o.PaymentMethod),
		Notes:         o.Notes,
		PricingOption: entities.PricingOptionType(o.PricingOption),
		Status:        entities.OrderStatusType(o.Status),
		DriverID:      o.DriverID,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func statusStrings(statuses []entities.OrderStatusType) []string {
	result := make([]string, len(statuses))
	for i, status := range statuses {
		result[i] = status.String()
	}
	return result
}
