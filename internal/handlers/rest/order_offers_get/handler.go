package order_offers_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
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

// ServeHTTP - список ставок по заказу для его владельца.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	customerID, err := strconv.ParseInt(r.URL.Query().Get("customer_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offers, err := h.service.ListOrderOffers(r.Context(), orderID, customerID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotOrderOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OffersResponse{
		Offers: make([]dto.Offer, 0, len(offers)),
	}
	for i := range offers {
		response.Offers = append(response.Offers, dto.Offer{
			ID:        offers[i].ID,
			OrderID:   offers[i].OrderID,
			DriverID:  offers[i].DriverID,
			Price:     offers[i].Price,
			Status:    offerStatus(&offers[i]),
			CreatedAt: offers[i].CreatedAt,
		})
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
