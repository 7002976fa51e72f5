package delivery

import (
	"github.com/AlekSi/pointer"
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	deliveryEntity := &entities.Delivery{
		ID:          d.ID,
		RequesterID: d.RequesterID,
		Pickup: entities.Location{
			Address:   d.PickupAddress,
			Longitude: d.PickupLon,
			Latitude:  d.PickupLat,
		},
		Dropoff: entities.Location{
			Address:   d.DropoffAddress,
			Longitude: d.DropoffLon,
			Latitude:  d.DropoffLat,
		},
		ProductDetails:     d.ProductDetails,
		Notes:              d.Notes,
		Priority:           entities.PriorityFromRank(int(d.PriorityRank)),
		Status:             entities.DeliveryStatus(d.Status),
		AssignedOperatorID: d.AssignedOperatorID,
		CancellationReason: d.CancellationReason,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}

	if d.ETAMinutes != nil {
		deliveryEntity.ETAMinutes = pointer.To(int(*d.ETAMinutes))
	}

	return deliveryEntity
}

func FromDomain(e *entities.Delivery) *DeliveryDB {
	if e == nil {
		return nil
	}

	deliveryDB := &DeliveryDB{
		ID:                 e.ID,
		RequesterID:        e.RequesterID,
		PickupAddress:      e.Pickup.Address,
		PickupLon:          e.Pickup.Longitude,
		PickupLat:          e.Pickup.Latitude,
		DropoffAddress:     e.Dropoff.Address,
		DropoffLon:         e.Dropoff.Longitude,
		DropoffLat:         e.Dropoff.Latitude,
		ProductDetails:     e.ProductDetails,
		Notes:              e.Notes,
		PriorityRank:       int16(e.Priority.Rank()),
		Status:             e.Status.String(),
		AssignedOperatorID: e.AssignedOperatorID,
		CancellationReason: e.CancellationReason,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	if e.ETAMinutes != nil {
		deliveryDB.ETAMinutes = pointer.To(int32(*e.ETAMinutes))
	}

	return deliveryDB
}
