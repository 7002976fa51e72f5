package delivery_status_put

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/dispatch"
	"dispatch/pkg/logger"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	deliveryID := mux.Vars(r)["id"]

	var updateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), *actor, deliveryID, updateDTO.Status, updateDTO.ETAMinutes, updateDTO.Reason)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDeliveryID),
			errors.Is(err, dispatch.ErrInvalidStatus),
			errors.Is(err, dispatch.ErrInvalidETA):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, dispatch.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusGatewayTimeout)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryFromEntity(*updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
