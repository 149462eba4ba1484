package messages

import "time"

// NDRActionSubmitted is published when a seller submits a follow-up action.
// The fulfillment backend consumes it; we only fire and forget.
type NDRActionSubmitted struct {
	NDRID   string            `json:"ndr_id"`
	Action  string            `json:"action"`
	Remarks string            `json:"remarks,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`

	SubmittedAt time.Time `json:"submitted_at"`
}

// NDRUpdated comes back from the backend when a report changed; the dashboard
// drops its cached view model so the next page load refetches.
type NDRUpdated struct {
	NDRID     string    `json:"ndr_id"`
	UpdatedAt time.Time `json:"updated_at"`
}
