// Package dto содержит транспортные структуры REST API.
// Доменные сущности наружу не отдаются: контракт API фиксируется здесь.
package dto

import (
	"time"

	"dispatch/internal/entities"
)

type Location struct {
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"` // [longitude, latitude]
}

type Delivery struct {
	ID                 string    `json:"id"`
	RequesterID        string    `json:"requester_id"`
	Pickup             Location  `json:"pickup"`
	Dropoff            Location  `json:"dropoff"`
	ProductDetails     string    `json:"product_details"`
	Notes              string    `json:"notes,omitempty"`
	Priority           string    `json:"priority"`
	Status             string    `json:"status"`
	AssignedOperatorID *string   `json:"assigned_operator_id,omitempty"`
	ETAMinutes         *int      `json:"eta_minutes,omitempty"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type DeliveryCreate struct {
	Pickup         Location `json:"pickup"`
	Dropoff        Location `json:"dropoff"`
	ProductDetails string   `json:"product_details"`
	Notes          string   `json:"notes"`
	Priority       string   `json:"priority"`
}

type DeliveryIngestRecord struct {
	RequesterID    string   `json:"requester_id"`
	Pickup         Location `json:"pickup"`
	Dropoff        Location `json:"dropoff"`
	ProductDetails string   `json:"product_details"`
	Notes          string   `json:"notes"`
	Priority       string   `json:"priority"`
}

type BulkIngestRequest struct {
	Records []DeliveryIngestRecord `json:"records"`
}

type IngestResult struct {
	DeliveryID string `json:"delivery_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BulkIngestResponse struct {
	Results []IngestResult `json:"results"`
}

type DeliveryAssignRequest struct {
	DeliveryID string `json:"delivery_id"`
	OperatorID string `json:"operator_id"`
}

type StatusUpdateRequest struct {
	Status     string  `json:"status"`
	ETAMinutes *int    `json:"eta_minutes"`
	Reason     *string `json:"reason"`
}

type CancelRequest struct {
	Reason *string `json:"reason"`
}

type DeliveryPage struct {
	Items      []Delivery `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func DeliveryFromEntity(e entities.Delivery) Delivery {
	return Delivery{
		ID:          e.ID,
		RequesterID: e.RequesterID,
		Pickup: Location{
			Address:     e.Pickup.Address,
			Coordinates: []float64{e.Pickup.Longitude, e.Pickup.Latitude},
		},
		Dropoff: Location{
			Address:     e.Dropoff.Address,
			Coordinates: []float64{e.Dropoff.Longitude, e.Dropoff.Latitude},
		},
		ProductDetails:     e.ProductDetails,
		Notes:              e.Notes,
		Priority:           e.Priority.String(),
		Status:             e.Status.String(),
		AssignedOperatorID: e.AssignedOperatorID,
		ETAMinutes:         e.ETAMinutes,
		CancellationReason: e.CancellationReason,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
