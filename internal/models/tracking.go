package models

import "time"

// Normalized shipment statuses (extend as couriers add more).
const (
	TrackingStatusInTransit      = "In Transit"
	TrackingStatusOutForDelivery = "Out for Delivery"
	TrackingStatusDelivered      = "Delivered"
	TrackingStatusShipped        = "Shipped"
)

type TrackingInfo struct {
	AWB              string
	CurrentStatus    string
	ExpectedDelivery time.Time
	Origin           string
	Destination      string
	Courier          string
	Events           []TrackingEvent
}

// TrackingEvent is one scan point. TrackingInfo.Events is ordered most recent first.
type TrackingEvent struct {
	Status      string
	Location    string
	Timestamp   time.Time
	Description string
}
