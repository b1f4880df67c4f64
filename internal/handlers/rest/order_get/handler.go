package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/order"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	var orderEntity *entities.Order
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err == nil {
		orderEntity, err = h.service.GetOrder(r.Context(), id)
	} else {
		// не число - ищем по читаемому номеру заявки
		orderEntity, err = h.service.GetOrderByRequestNumber(r.Context(), idStr)
	}
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
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
