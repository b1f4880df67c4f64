package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreateEntity := entities.OrderCreate{
		CustomerID: orderCreateDTO.CustomerID,
		Service: entities.ServiceClass{
			Category:   orderCreateDTO.ServiceCategory,
			SubService: pointer.GetString(orderCreateDTO.SubService),
		},
		Pickup: entities.Location{
			Address: orderCreateDTO.Pickup.Address,
			Lat:     orderCreateDTO.Pickup.Lat,
			Lng:     orderCreateDTO.Pickup.Lng,
		},
		Dropoff: entities.Location{
			Address: orderCreateDTO.Dropoff.Address,
			Lat:     orderCreateDTO.Dropoff.Lat,
			Lng:     orderCreateDTO.Dropoff.Lng,
		},
		ScheduledFor:  orderCreateDTO.ScheduledFor,
		TotalAmount:   orderCreateDTO.TotalAmount,
		DriverShare:   orderCreateDTO.DriverShare,
		PaymentMethod: entities.PaymentMethodType(pointer.GetString(orderCreateDTO.PaymentMethod)),
		Notes:         pointer.GetString(orderCreateDTO.Notes),
		PricingOption: entities.PricingOptionType(orderCreateDTO.PricingOption),
	}

	created, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidCustomerID),
			errors.Is(err, order.ErrInvalidPickupAddress),
			errors.Is(err, order.ErrInvalidDropoffAddress),
			errors.Is(err, order.ErrInvalidServiceClass),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrInvalidPaymentMethod),
			errors.Is(err, order.ErrInvalidPricingOption):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderCreateResponse{
		ID:            created.ID,
		RequestNumber: created.RequestNumber,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
