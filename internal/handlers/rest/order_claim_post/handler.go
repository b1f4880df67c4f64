package order_claim_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/assignment"
	driverservice "marketplace/internal/service/driver"
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

// ServeHTTP - захват auto_accept заказа. Побеждает ровно один водитель,
// остальные получают 409.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var claimDTO dto.OrderClaim
	err = json.NewDecoder(r.Body).Decode(&claimDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	claimed, err := h.service.ClaimOrder(r.Context(), orderID, claimDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, driverservice.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrAlreadyClaimed),
			errors.Is(err, assignment.ErrOrderNotClaimable):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrWrongPricingMode),
			errors.Is(err, assignment.ErrDriverNotOnline),
			errors.Is(err, assignment.ErrServiceClassMismatch):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Order{
		ID:            claimed.ID,
		RequestNumber: claimed.RequestNumber,
		CustomerID:    claimed.CustomerID,
		Status:        claimed.Status.String(),
		PricingOption: claimed.PricingOption.String(),
		PaymentMethod: claimed.PaymentMethod.String(),
		TotalAmount:   claimed.TotalAmount,
		DriverShare:   claimed.DriverShare,
		DriverID:      claimed.DriverID,
		CreatedAt:     claimed.CreatedAt,
		UpdatedAt:     claimed.UpdatedAt,
	}
	response.ServiceCategory = claimed.Service.Category
	response.Pickup = dto.Location{
		Address: claimed.Pickup.Address,
		Lat:     claimed.Pickup.Lat,
		Lng:     claimed.Pickup.Lng,
	}
	response.Dropoff = dto.Location{
		Address: claimed.Dropoff.Address,
		Lat:     claimed.Dropoff.Lat,
		Lng:     claimed.Dropoff.Lng,
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
