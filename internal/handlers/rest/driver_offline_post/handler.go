package driver_offline_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/service/driver"
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverEntity, err := h.service.SetOffline(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrDriverNotApproved):
			w.WriteHeader(http.StatusUnprocessableEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	driverDTO := dto.Driver{
		ID:              driverEntity.ID,
		UserID:          driverEntity.UserID,
		Status:          driverEntity.Status.String(),
		ServiceCategory: driverEntity.Service.Category,
		WalletBalance:   driverEntity.WalletBalance,
		Special:         driverEntity.Special,
		VehicleID:       driverEntity.VehicleID,
		CreatedAt:       driverEntity.CreatedAt,
		UpdatedAt:       driverEntity.UpdatedAt,
	}
	if driverEntity.Service.SubService != "" {
		driverDTO.SubService = pointer.ToString(driverEntity.Service.SubService)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(driverDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
