package delivery

import "time"

type DeliveryDB struct {
	ID                 string
	RequesterID        string
	PickupAddress      string
	PickupLon          float64
	PickupLat          float64
	DropoffAddress     string
	DropoffLon         float64
	DropoffLat         float64
	ProductDetails     string
	Notes              string
	PriorityRank       int16
	Status             string
	AssignedOperatorID *string
	ETAMinutes         *int32
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
