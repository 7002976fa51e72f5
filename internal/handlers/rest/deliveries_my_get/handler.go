package deliveries_my_get

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/query"
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

	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	page, err := h.service.ListMine(r.Context(), *actor, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrInvalidCursor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusGatewayTimeout)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryPage{
		Items:      make([]dto.Delivery, len(page.Items)),
		NextCursor: page.NextCursor,
	}
	for i, item := range page.Items {
		response.Items[i] = dto.DeliveryFromEntity(item)
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
