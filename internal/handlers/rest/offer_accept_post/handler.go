package offer_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/assignment"
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

// ServeHTTP принимает ставку: заказ уходит выбранному водителю,
// остальные ставки закрываются в той же транзакции.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	offerID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var decisionDTO dto.OfferDecision
	err = json.NewDecoder(r.Body).Decode(&decisionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resolution, err := h.service.AcceptOffer(r.Context(), offerID, decisionDTO.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOfferID),
			errors.Is(err, assignment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotOrderOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrOfferNotFound),
			errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotClaimable),
			errors.Is(err, assignment.ErrOfferAlreadyResolved):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrWrongPricingMode):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OfferAcceptResponse{
		OrderID:        resolution.OrderID,
		DriverID:       resolution.DriverID,
		Price:          resolution.Price,
		RejectedOffers: resolution.RejectedOffers,
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
