package driver_approve_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"marketplace/internal/entities"
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

// ServeHTTP одобряет анкету водителя. Модератор может заодно
// поправить класс услуги и выдать special-доступ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var approveDTO dto.DriverApprove
	err = json.NewDecoder(r.Body).Decode(&approveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var serviceClass *entities.ServiceClass
	if approveDTO.ServiceCategory != nil {
		serviceClass = &entities.ServiceClass{
			Category:   *approveDTO.ServiceCategory,
			SubService: pointer.GetString(approveDTO.SubService),
		}
	}

	driverEntity, err := h.service.ApproveDriver(r.Context(), id, serviceClass, approveDTO.Special)
	if err != nil {
		switch {
		case errors.Is(err, driver.ErrInvalidDriverID),
			errors.Is(err, driver.ErrInvalidServiceClass):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, driver.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, driver.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDriverDTO(driverEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDriverDTO(driverEntity *entities.Driver) dto.Driver {
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
	return driverDTO
}
