package deliveries_bulk_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/handlers/rest/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/delivery"
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

	var ingestDTO dto.BulkIngestRequest
	err := json.NewDecoder(r.Body).Decode(&ingestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	inputs := make([]delivery.CreateInput, len(ingestDTO.Records))
	for i, record := range ingestDTO.Records {
		inputs[i] = delivery.CreateInput{
			RequesterID: record.RequesterID,
			Pickup: delivery.LocationInput{
				Address:     record.Pickup.Address,
				Coordinates: record.Pickup.Coordinates,
			},
			Dropoff: delivery.LocationInput{
				Address:     record.Dropoff.Address,
				Coordinates: record.Dropoff.Coordinates,
			},
			ProductDetails: record.ProductDetails,
			Notes:          record.Notes,
			Priority:       record.Priority,
		}
	}

	results, err := h.service.BulkIngest(r.Context(), *actor, inputs)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrEmptyBatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, context.DeadlineExceeded):
			w.WriteHeader(http.StatusGatewayTimeout)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	// частичные отказы не меняют код ответа: статус каждой записи в ее результате
	response := dto.BulkIngestResponse{
		Results: make([]dto.IngestResult, len(results)),
	}
	for i, result := range results {
		response.Results[i].DeliveryID = result.DeliveryID
		if result.Err != nil {
			response.Results[i].Error = result.Err.Error()
		}
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
