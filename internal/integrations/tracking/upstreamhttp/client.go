// Package upstreamhttp resolves tracking info from the seller API.
package upstreamhttp

import (
	"context"
	"time"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/upstream"
)

type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

type trackingPayload struct {
	AWB              string         `json:"awb"`
	CurrentStatus    string         `json:"current_status"`
	ExpectedDelivery time.Time      `json:"expected_delivery"`
	Origin           string         `json:"origin"`
	Destination      string         `json:"destination"`
	Courier          string         `json:"courier_name"`
	Events           []eventPayload `json:"events"`
}

type eventPayload struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

func (c *Client) GetTracking(ctx context.Context, awb string) (models.TrackingInfo, error) {
	if err := tracking.ValidateAWB(awb); err != nil {
		return models.TrackingInfo{}, err
	}

	var p trackingPayload
	if err := c.api.GetJSON(ctx, "/api/v2/seller/tracking/"+awb, &p); err != nil {
		return models.TrackingInfo{}, err
	}

	events := make([]models.TrackingEvent, 0, len(p.Events))
	for _, e := range p.Events {
		events = append(events, models.TrackingEvent{
			Status:      e.Status,
			Location:    e.Location,
			Timestamp:   e.Timestamp,
			Description: e.Description,
		})
	}

	return models.TrackingInfo{
		AWB:              p.AWB,
		CurrentStatus:    p.CurrentStatus,
		ExpectedDelivery: p.ExpectedDelivery,
		Origin:           p.Origin,
		Destination:      p.Destination,
		Courier:          p.Courier,
		Events:           events,
	}, nil
}
