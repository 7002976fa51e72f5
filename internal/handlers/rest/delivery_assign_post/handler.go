package delivery_assign_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
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

	var assignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// оператор без явного operator_id забирает доставку на себя
	operatorID := assignDTO.OperatorID
	if operatorID == "" && actor.Role == entities.RoleOperator {
		operatorID = actor.SubjectID
	}

	assigned, err := h.service.Assign(r.Context(), *actor, assignDTO.DeliveryID, operatorID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidDeliveryID),
			errors.Is(err, dispatch.ErrInvalidOperatorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, dispatch.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, dispatch.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, dispatch.ErrAlreadyAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusGatewayTimeout)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryFromEntity(*assigned)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
