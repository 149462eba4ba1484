// Package mock fabricates tracking data for local development, selected by
// dashboard.tracking_mode: "mock". Three well-known AWBs return canned
// journeys; any other valid AWB gets a synthesized one.
package mock

import (
	"context"
	"math/rand"
	"time"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

type Rand interface {
	Intn(n int) int
}

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

var cities = []string{
	"Mumbai, Maharashtra",
	"Delhi, Delhi",
	"Bengaluru, Karnataka",
	"Hyderabad, Telangana",
	"Chennai, Tamil Nadu",
	"Kolkata, West Bengal",
	"Pune, Maharashtra",
	"Ahmedabad, Gujarat",
	"Jaipur, Rajasthan",
	"Lucknow, Uttar Pradesh",
}

var couriers = []string{"Delhivery", "Blue Dart", "DTDC", "Ekart"}

type Client struct {
	r       Rand
	clock   Clock
	latency time.Duration
}

// New builds the mock client. Nil r/clock fall back to the ambient sources;
// tests inject both for determinism.
func New(r Rand, clock Clock) *Client {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clock == nil {
		clock = systemClock{}
	}
	return &Client{
		r:       r,
		clock:   clock,
		latency: 1 * time.Second,
	}
}

// WithLatency overrides the simulated network delay. Zero disables it.
func (c *Client) WithLatency(d time.Duration) *Client {
	c.latency = d
	return c
}

func (c *Client) GetTracking(ctx context.Context, awb string) (models.TrackingInfo, error) {
	if err := tracking.ValidateAWB(awb); err != nil {
		return models.TrackingInfo{}, err
	}

	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.TrackingInfo{}, ctx.Err()
		case <-t.C:
		}
	}

	now := c.clock.Now()
	if build, ok := canned[awb]; ok {
		return build(now), nil
	}
	return c.synthesize(awb, now), nil
}

func (c *Client) synthesize(awb string, now time.Time) models.TrackingInfo {
	origin := cities[c.r.Intn(len(cities))]
	destination := cities[c.r.Intn(len(cities))]
	for destination == origin {
		destination = cities[c.r.Intn(len(cities))]
	}

	// 1..3 transit hops, with replacement: a hop may repeat or touch an
	// endpoint city.
	hops := 1 + c.r.Intn(3)
	var events []models.TrackingEvent
	for i := 0; i < hops; i++ {
		ev := models.TrackingEvent{
			Status:      models.TrackingStatusInTransit,
			Location:    cities[c.r.Intn(len(cities))],
			Timestamp:   now.Add(-time.Duration(24-8*i) * time.Hour),
			Description: "Shipment in transit",
		}
		events = append([]models.TrackingEvent{ev}, events...)
	}
	events = append(events, models.TrackingEvent{
		Status:      models.TrackingStatusShipped,
		Location:    origin,
		Timestamp:   now.Add(-48 * time.Hour),
		Description: "Shipment picked up from seller",
	})

	return models.TrackingInfo{
		AWB:              awb,
		CurrentStatus:    models.TrackingStatusInTransit,
		ExpectedDelivery: now.Add(72 * time.Hour),
		Origin:           origin,
		Destination:      destination,
		Courier:          couriers[c.r.Intn(len(couriers))],
		Events:           events,
	}
}

// Canned journeys are rebuilt per call: offsets from "now" are fixed, literal
// timestamps are not.
var canned = map[string]func(now time.Time) models.TrackingInfo{
	"1234567890": func(now time.Time) models.TrackingInfo {
		return models.TrackingInfo{
			AWB:              "1234567890",
			CurrentStatus:    models.TrackingStatusInTransit,
			ExpectedDelivery: now.Add(48 * time.Hour),
			Origin:           "Mumbai, Maharashtra",
			Destination:      "Delhi, Delhi",
			Courier:          "Delhivery",
			Events: []models.TrackingEvent{
				{
					Status:      models.TrackingStatusInTransit,
					Location:    "Jaipur, Rajasthan",
					Timestamp:   now.Add(-6 * time.Hour),
					Description: "Shipment arrived at sorting hub",
				},
				{
					Status:      models.TrackingStatusInTransit,
					Location:    "Ahmedabad, Gujarat",
					Timestamp:   now.Add(-24 * time.Hour),
					Description: "Shipment in transit",
				},
				{
					Status:      models.TrackingStatusShipped,
					Location:    "Mumbai, Maharashtra",
					Timestamp:   now.Add(-48 * time.Hour),
					Description: "Shipment picked up from seller",
				},
			},
		}
	},
	"9876543210": func(now time.Time) models.TrackingInfo {
		return models.TrackingInfo{
			AWB:              "9876543210",
			CurrentStatus:    models.TrackingStatusDelivered,
			ExpectedDelivery: now.Add(-2 * time.Hour),
			Origin:           "Bengaluru, Karnataka",
			Destination:      "Chennai, Tamil Nadu",
			Courier:          "Blue Dart",
			Events: []models.TrackingEvent{
				{
					Status:      models.TrackingStatusDelivered,
					Location:    "Chennai, Tamil Nadu",
					Timestamp:   now.Add(-2 * time.Hour),
					Description: "Delivered, signed by recipient",
				},
				{
					Status:      models.TrackingStatusOutForDelivery,
					Location:    "Chennai, Tamil Nadu",
					Timestamp:   now.Add(-8 * time.Hour),
					Description: "Out for delivery",
				},
				{
					Status:      models.TrackingStatusInTransit,
					Location:    "Vellore, Tamil Nadu",
					Timestamp:   now.Add(-24 * time.Hour),
					Description: "Shipment in transit",
				},
				{
					Status:      models.TrackingStatusShipped,
					Location:    "Bengaluru, Karnataka",
					Timestamp:   now.Add(-48 * time.Hour),
					Description: "Shipment picked up from seller",
				},
			},
		}
	},
	"5556667778": func(now time.Time) models.TrackingInfo {
		return models.TrackingInfo{
			AWB:              "5556667778",
			CurrentStatus:    models.TrackingStatusOutForDelivery,
			ExpectedDelivery: now.Add(6 * time.Hour),
			Origin:           "Pune, Maharashtra",
			Destination:      "Hyderabad, Telangana",
			Courier:          "DTDC",
			Events: []models.TrackingEvent{
				{
					Status:      models.TrackingStatusOutForDelivery,
					Location:    "Hyderabad, Telangana",
					Timestamp:   now.Add(-3 * time.Hour),
					Description: "Out for delivery",
				},
				{
					Status:      models.TrackingStatusShipped,
					Location:    "Pune, Maharashtra",
					Timestamp:   now.Add(-48 * time.Hour),
					Description: "Shipment picked up from seller",
				},
			},
		}
	},
}
