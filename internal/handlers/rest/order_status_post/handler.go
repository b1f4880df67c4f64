package order_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

// ServeHTTP двигает назначенный заказ по жизненному циклу:
// in_progress -> picked_up -> delivered. Двигает только назначенный водитель.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var statusDTO dto.OrderStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.AdvanceStatus(
		r.Context(),
		orderID,
		statusDTO.DriverID,
		entities.OrderStatusType(statusDTO.Status),
	)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidStatusStep):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:            updated.ID,
		RequestNumber: updated.RequestNumber,
		CustomerID:    updated.CustomerID,
		Status:        updated.Status.String(),
		PricingOption: updated.PricingOption.String(),
		PaymentMethod: updated.PaymentMethod.String(),
		TotalAmount:   updated.TotalAmount,
		DriverShare:   updated.DriverShare,
		DriverID:      updated.DriverID,
		CreatedAt:     updated.CreatedAt,
		UpdatedAt:     updated.UpdatedAt,
	}
	response.ServiceCategory = updated.Service.Category
	response.Pickup = dto.Location{
		Address: updated.Pickup.Address,
		Lat:     updated.Pickup.Lat,
		Lng:     updated.Pickup.Lng,
	}
	response.Dropoff = dto.Location{
		Address: updated.Dropoff.Address,
		Lat:     updated.Dropoff.Lat,
		Lng:     updated.Dropoff.Lng,
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
