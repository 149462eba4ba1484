// Package dashboardapi is the JSON surface the seller dashboard pages call.
package dashboardapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/services/actions"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/upstream"
)

type NDRService interface {
	GetNDR(ctx context.Context, id string) (*models.NDR, error)
}

type ActionsService interface {
	Submit(ctx context.Context, in models.NDRActionInput) (*models.NDRAction, error)
	List(ctx context.Context, ndrID string, limit, offset int) ([]*models.NDRAction, error)
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, int64, error)
}

// Settings is handed to the browser verbatim.
type Settings struct {
	MapProviderKey string `json:"mapProviderKey"`
	TrackingMode   string `json:"trackingMode"`
}

type API struct {
	ndr     NDRService
	actions ActionsService
	tracker tracking.Client

	rl          RateLimiter
	rlPerMinute int64

	settings Settings
}

func New(ndr NDRService, acts ActionsService, tracker tracking.Client, settings Settings) *API {
	return &API{
		ndr:      ndr,
		actions:  acts,
		tracker:  tracker,
		settings: settings,
	}
}

// WithRateLimiter caps tracking lookups per client per minute.
func (a *API) WithRateLimiter(rl RateLimiter, perMinute int64) *API {
	a.rl = rl
	a.rlPerMinute = perMinute
	return a
}

func (a *API) Routes(r chi.Router) {
	r.Get("/api/v1/ndr/{id}", a.handleGetNDR)
	r.Post("/api/v1/ndr/{id}/actions", a.handleSubmitAction)
	r.Get("/api/v1/ndr/{id}/actions", a.handleListActions)
	r.Get("/api/v1/tracking/{awb}", a.handleGetTracking)
	r.Get("/api/v1/settings", a.handleSettings)
}

func (a *API) handleGetNDR(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	n, err := a.ndr.GetNDR(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err, "failed to fetch NDR details")
		return
	}
	writeJSON(w, http.StatusOK, toNDRView(n))
}

func (a *API) handleGetTracking(w http.ResponseWriter, r *http.Request) {
	awb := chi.URLParam(r, "awb")

	if a.rl != nil && a.rlPerMinute > 0 {
		key := fmt.Sprintf("rl:tracking:%s:%s", clientIP(r), time.Now().UTC().Format("200601021504"))
		allowed, n, err := a.rl.Allow(r.Context(), key, a.rlPerMinute, 70*time.Second)
		if err == nil && !allowed {
			slog.Warn("tracking rate limit exceeded", "client", clientIP(r), "count", n)
			writeJSON(w, http.StatusTooManyRequests, errBody{Error: "too many tracking requests"})
			return
		}
	}

	info, err := a.tracker.GetTracking(r.Context(), awb)
	if err != nil {
		a.writeError(w, r, err, "failed to fetch tracking details")
		return
	}
	writeJSON(w, http.StatusOK, toTrackingView(info))
}

type actionRequest struct {
	Action  string            `json:"action"`
	Remarks string            `json:"remarks"`
	Fields  map[string]string `json:"fields"`
}

func (a *API) handleSubmitAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req actionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errBody{Error: "invalid request body"})
		return
	}

	act, err := a.actions.Submit(r.Context(), models.NDRActionInput{
		NDRID:   id,
		Action:  req.Action,
		Remarks: req.Remarks,
		Fields:  req.Fields,
	})
	if err != nil {
		a.writeError(w, r, err, "failed to submit action")
		return
	}
	writeJSON(w, http.StatusCreated, toActionView(act))
}

func (a *API) handleListActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	acts, err := a.actions.List(r.Context(), id, 100, 0)
	if err != nil {
		a.writeError(w, r, err, "failed to list actions")
		return
	}
	out := make([]actionView, 0, len(acts))
	for _, act := range acts {
		out = append(out, toActionView(act))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.settings)
}

type errBody struct {
	Error string `json:"error"`
}

// writeError maps the error taxonomy onto status codes: malformed input is
// the caller's fault, a rejected credential means sign in again, anything
// else is a generic upstream failure the page shows with a retry.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	switch {
	case errors.Is(err, tracking.ErrInvalidAWB):
		writeJSON(w, http.StatusBadRequest, errBody{Error: "invalid AWB format"})
	case errors.Is(err, actions.ErrUnknownAction):
		writeJSON(w, http.StatusBadRequest, errBody{Error: "unknown action type"})
	case errors.Is(err, upstream.ErrUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, errBody{Error: "unauthenticated"})
	case errors.Is(err, context.Canceled):
		// Client went away; nothing to answer.
	default:
		slog.Error("dashboard api", "path", r.URL.Path, "error", err.Error())
		writeJSON(w, http.StatusBadGateway, errBody{Error: generic})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
