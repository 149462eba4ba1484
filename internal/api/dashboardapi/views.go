package dashboardapi

import (
	"time"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

type ndrView struct {
	AWB               string          `json:"awb"`
	OrderID           string          `json:"orderId"`
	OrderDate         string          `json:"orderDate"`
	Courier           string          `json:"courier"`
	CustomerName      string          `json:"customerName"`
	Attempts          int             `json:"attempts"`
	LastAttemptDate   string          `json:"lastAttemptDate"`
	Status            string          `json:"status"`
	Reason            string          `json:"reason"`
	RecommendedAction string          `json:"recommendedAction"`
	CurrentLocation   models.GeoPoint `json:"currentLocation"`
	DeliveryAttempts  []attemptView   `json:"deliveryAttempts"`
	Customer          customerView    `json:"customer"`
	Products          []productView   `json:"products"`
}

type attemptView struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	AgentRemarks string `json:"agentRemarks,omitempty"`
}

type customerView struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Country  string `json:"country"`
}

type productView struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Subtotal  float64 `json:"subtotal"`
	Image     string  `json:"image,omitempty"`
}

func toNDRView(n *models.NDR) ndrView {
	attempts := make([]attemptView, 0, len(n.DeliveryAttempts))
	for _, a := range n.DeliveryAttempts {
		attempts = append(attempts, attemptView{
			Date:         a.Date,
			Time:         a.Time,
			Status:       a.Status,
			Reason:       a.Reason,
			AgentRemarks: a.AgentRemarks,
		})
	}
	products := make([]productView, 0, len(n.Products))
	for _, p := range n.Products {
		products = append(products, productView{
			Name:      p.Name,
			SKU:       p.SKU,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Subtotal:  p.Subtotal(),
			Image:     p.Image,
		})
	}
	return ndrView{
		AWB:               n.AWB,
		OrderID:           n.OrderID,
		OrderDate:         n.OrderDate,
		Courier:           n.Courier,
		CustomerName:      n.CustomerName,
		Attempts:          n.Attempts,
		LastAttemptDate:   n.LastAttemptDate,
		Status:            n.Status,
		Reason:            n.Reason,
		RecommendedAction: n.RecommendedAction,
		CurrentLocation:   n.CurrentLocation,
		DeliveryAttempts:  attempts,
		Customer: customerView{
			Name:     n.Customer.Name,
			Phone:    n.Customer.Phone,
			Email:    n.Customer.Email,
			Address1: n.Customer.Address1,
			Address2: n.Customer.Address2,
			City:     n.Customer.City,
			State:    n.Customer.State,
			Pincode:  n.Customer.Pincode,
			Country:  n.Customer.Country,
		},
		Products: products,
	}
}

type trackingView struct {
	AWB              string      `json:"awb"`
	CurrentStatus    string      `json:"currentStatus"`
	ExpectedDelivery time.Time   `json:"expectedDelivery"`
	Origin           string      `json:"origin"`
	Destination      string      `json:"destination"`
	Courier          string      `json:"courier"`
	Events           []eventView `json:"events"`
}

type eventView struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description,omitempty"`
}

func toTrackingView(info models.TrackingInfo) trackingView {
	events := make([]eventView, 0, len(info.Events))
	for _, e := range info.Events {
		events = append(events, eventView{
			Status:      e.Status,
			Location:    e.Location,
			Timestamp:   e.Timestamp,
			Description: e.Description,
		})
	}
	return trackingView{
		AWB:              info.AWB,
		CurrentStatus:    info.CurrentStatus,
		ExpectedDelivery: info.ExpectedDelivery,
		Origin:           info.Origin,
		Destination:      info.Destination,
		Courier:          info.Courier,
		Events:           events,
	}
}

type actionView struct {
	ID        uint64            `json:"id"`
	NDRID     string            `json:"ndrId"`
	Action    string            `json:"action"`
	Remarks   string            `json:"remarks,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toActionView(a *models.NDRAction) actionView {
	return actionView{
		ID:        a.ID,
		NDRID:     a.NDRID,
		Action:    a.Action,
		Remarks:   a.Remarks,
		Fields:    a.Fields,
		CreatedAt: a.CreatedAt,
	}
}
