package actions

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/broker/messages"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

// Follow-up actions a seller may submit against a report.
const (
	ActionReschedule     = "reschedule"
	ActionUpdateAddress  = "update-address"
	ActionCancel         = "cancel"
	ActionReturnToOrigin = "return-to-origin"
	ActionReattempt      = "reattempt"
)

var ErrUnknownAction = errors.New("unknown action type")

var validActions = map[string]struct{}{
	ActionReschedule:     {},
	ActionUpdateAddress:  {},
	ActionCancel:         {},
	ActionReturnToOrigin: {},
	ActionReattempt:      {},
}

type Repository interface {
	InsertAction(ctx context.Context, in models.NDRActionInput) (*models.NDRAction, error)
	ListActionsByNDR(ctx context.Context, ndrID string, limit, offset int) ([]*models.NDRAction, error)
}

type Producer interface {
	Publish(ctx context.Context, topic string, key, value []byte) error
}

type Service struct {
	repo     Repository
	producer Producer
	topic    string
}

func New(repo Repository, producer Producer, topic string) *Service {
	return &Service{repo: repo, producer: producer, topic: topic}
}

// Submit records the action and hands it to the fulfillment backend. The
// audit row is written first; a publish failure is returned so the caller can
// surface it, the row stays.
func (s *Service) Submit(ctx context.Context, in models.NDRActionInput) (*models.NDRAction, error) {
	if in.NDRID == "" {
		return nil, errors.New("ndr id is required")
	}
	if _, ok := validActions[in.Action]; !ok {
		return nil, errors.Wrapf(ErrUnknownAction, "action %q", in.Action)
	}
	if in.Action == ActionUpdateAddress && len(in.Fields) == 0 {
		return nil, errors.New("update-address requires address fields")
	}

	a, err := s.repo.InsertAction(ctx, in)
	if err != nil {
		return nil, err
	}

	if s.producer != nil && s.topic != "" {
		msg := messages.NDRActionSubmitted{
			NDRID:       a.NDRID,
			Action:      a.Action,
			Remarks:     a.Remarks,
			Fields:      a.Fields,
			SubmittedAt: a.CreatedAt,
		}
		b, err := json.Marshal(msg)
		if err != nil {
			return nil, errors.Wrap(err, "marshal action message")
		}
		if err := s.producer.Publish(ctx, s.topic, []byte(a.NDRID), b); err != nil {
			return nil, err
		}
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, ndrID string, limit, offset int) ([]*models.NDRAction, error) {
	if ndrID == "" {
		return nil, errors.New("ndr id is required")
	}
	return s.repo.ListActionsByNDR(ctx, ndrID, limit, offset)
}
