package offer_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var offerDTO dto.OfferSubmit
	err = json.NewDecoder(r.Body).Decode(&offerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offerSubmit := entities.OfferSubmit{
		OrderID:  orderID,
		DriverID: offerDTO.DriverID,
		Price:    offerDTO.Price,
	}

	created, err := h.service.SubmitOffer(r.Context(), offerSubmit)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidDriverID),
			errors.Is(err, assignment.ErrInvalidPrice):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, driverservice.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotClaimable),
			errors.Is(err, assignment.ErrDuplicateOffer):
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

	response := dto.Offer{
		ID:        created.ID,
		OrderID:   created.OrderID,
		DriverID:  created.DriverID,
		Price:     created.Price,
		Status:    offerStatus(created),
		CreatedAt: created.CreatedAt,
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

func offerStatus(offer *entities.Offer) string {
	switch {
	case offer.Accepted == nil:
		return "pending"
	case *offer.Accepted:
		return "accepted"
	default:
		return "rejected"
	}
}
