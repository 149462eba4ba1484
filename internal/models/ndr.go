package models

import "time"

// NDR statuses as the seller API reports them.
const (
	NDRStatusActionRequired = "Action Required"
	NDRStatusInProgress     = "In Progress"
	NDRStatusResolved       = "Resolved"
)

// LastAttemptPlaceholder is shown when a report carries no attempt history.
const LastAttemptPlaceholder = "-"

type NDR struct {
	AWB               string
	OrderID           string
	OrderDate         string
	Courier           string
	CustomerName      string
	Attempts          int
	LastAttemptDate   string
	Status            string
	Reason            string
	RecommendedAction string
	CurrentLocation   GeoPoint
	DeliveryAttempts  []DeliveryAttempt
	Customer          CustomerDetails
	Products          []LineItem
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DeliveryAttempt is one courier attempt; order within NDR.DeliveryAttempts is
// chronological as returned by the source.
type DeliveryAttempt struct {
	Date         string
	Time         string
	Status       string
	Reason       string
	AgentRemarks string
}

type CustomerDetails struct {
	Name     string
	Phone    string
	Email    string
	Address1 string
	Address2 string
	City     string
	State    string
	Pincode  string
	Country  string
}

type LineItem struct {
	Name      string
	SKU       string
	Quantity  int
	UnitPrice float64
	Image     string
}

// Subtotal is derived, never stored.
func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

type NDRActionInput struct {
	NDRID   string
	Action  string
	Remarks string
	Fields  map[string]string
}

// NDRAction is one submitted follow-up action, kept as an audit trail.
type NDRAction struct {
	ID        uint64
	NDRID     string
	Action    string
	Remarks   string
	Fields    map[string]string
	CreatedAt time.Time
}
