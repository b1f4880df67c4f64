package orders_available_get

import (
	"encoding/json"
	"net/http"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдает ленту заказов, открытых для назначения.
// Класс услуги в query опционален: без него лента не фильтруется.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	serviceClass := entities.ServiceClass{
		Category:   query.Get("service_category"),
		SubService: query.Get("sub_service"),
	}

	orders, err := h.service.ListAvailableOrders(r.Context(), serviceClass)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.OrdersResponse{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, toOrderDTO(&orders[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	orderDTO := dto.Order{
		ID:              orderEntity.ID,
		RequestNumber:   orderEntity.RequestNumber,
		CustomerID:      orderEntity.CustomerID,
		ServiceCategory: orderEntity.Service.Category,
		Pickup: dto.Location{
			Address: orderEntity.Pickup.Address,
			Lat:     orderEntity.Pickup.Lat,
			Lng:     orderEntity.Pickup.Lng,
		},
		Dropoff: dto.Location{
			Address: orderEntity.Dropoff.Address,
			Lat:     orderEntity.Dropoff.Lat,
			Lng:     orderEntity.Dropoff.Lng,
		},
		ScheduledFor:  orderEntity.ScheduledFor,
		TotalAmount:   orderEntity.TotalAmount,
		DriverShare:   orderEntity.DriverShare,
		PaymentMethod: orderEntity.PaymentMethod.String(),
		PricingOption: orderEntity.PricingOption.String(),
		Status:        orderEntity.Status.String(),
		DriverID:      orderEntity.DriverID,
		CreatedAt:     orderEntity.CreatedAt,
		UpdatedAt:     orderEntity.UpdatedAt,
	}
	if orderEntity.Service.SubService != "" {
		orderDTO.SubService = pointer.ToString(orderEntity.Service.SubService)
	}
	if orderEntity.Notes != "" {
		orderDTO.Notes = pointer.ToString(orderEntity.Notes)
	}
	return orderDTO
}
