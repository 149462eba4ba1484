package ndr

import "github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"

// Country is not trusted from the payload; the seller API serves domestic
// shipments only.
const fixedCountry = "India"

type ndrPayload struct {
	AWB               string           `json:"awb"`
	OrderID           string           `json:"order_id"`
	OrderDate         string           `json:"order_date"`
	CourierName       string           `json:"courier_name"`
	CustomerName      string           `json:"customer_name"`
	Attempts          int              `json:"attempts"`
	AttemptHistory    []attemptPayload `json:"attempt_history"`
	Status            string           `json:"status"`
	NDRReason         string           `json:"ndr_reason"`
	RecommendedAction string           `json:"recommended_action"`
	CurrentLocation   *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"current_location"`
	DeliveryAddress addressPayload   `json:"delivery_address"`
	Products        []productPayload `json:"products"`
}

type attemptPayload struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
	AgentRemarks string `json:"agent_remarks"`
}

type addressPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

type productPayload struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
}

func transform(p ndrPayload) models.NDR {
	lastAttempt := models.LastAttemptPlaceholder
	attempts := make([]models.DeliveryAttempt, 0, len(p.AttemptHistory))
	for _, a := range p.AttemptHistory {
		attempts = append(attempts, models.DeliveryAttempt{
			Date:         a.Date,
			Time:         a.Time,
			Status:       a.Status,
			Reason:       a.Reason,
			AgentRemarks: a.AgentRemarks,
		})
	}
	if len(attempts) > 0 {
		lastAttempt = attempts[0].Date
	}

	var loc models.GeoPoint
	if p.CurrentLocation != nil {
		loc = models.GeoPoint{Lat: p.CurrentLocation.Lat, Lng: p.CurrentLocation.Lng}
	}

	products := make([]models.LineItem, 0, len(p.Products))
	for _, pr := range p.Products {
		products = append(products, models.LineItem{
			Name:      pr.Name,
			SKU:       pr.SKU,
			Quantity:  pr.Quantity,
			UnitPrice: pr.Price,
			Image:     pr.Image,
		})
	}

	return models.NDR{
		AWB:               p.AWB,
		OrderID:           p.OrderID,
		OrderDate:         p.OrderDate,
		Courier:           p.CourierName,
		CustomerName:      p.CustomerName,
		Attempts:          p.Attempts,
		LastAttemptDate:   lastAttempt,
		Status:            p.Status,
		Reason:            p.NDRReason,
		RecommendedAction: p.RecommendedAction,
		CurrentLocation:   loc,
		DeliveryAttempts:  attempts,
		Customer: models.CustomerDetails{
			Name:     p.DeliveryAddress.Name,
			Phone:    p.DeliveryAddress.Phone,
			Email:    p.DeliveryAddress.Email,
			Address1: p.DeliveryAddress.AddressLine1,
			Address2: p.DeliveryAddress.AddressLine2,
			City:     p.DeliveryAddress.City,
			State:    p.DeliveryAddress.State,
			Pincode:  p.DeliveryAddress.Pincode,
			Country:  fixedCountry,
		},
		Products: products,
	}
}
