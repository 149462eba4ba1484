package pgndr

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

func (s *Storage) InsertAction(ctx context.Context, in models.NDRActionInput) (*models.NDRAction, error) {
	now := time.Now().UTC()

	var fields any
	if len(in.Fields) > 0 {
		fields = in.Fields
	}

	var id uint64
	err := s.db.QueryRow(ctx, `
INSERT INTO ndr_actions (ndr_id, action, remarks, fields, created_at)
VALUES ($1,$2,$3,$4,$5)
RETURNING id
`, in.NDRID, in.Action, in.Remarks, fields, now).Scan(&id)
	if err != nil {
		return nil, errors.Wrap(err, "insert ndr action")
	}

	return &models.NDRAction{
		ID:        id,
		NDRID:     in.NDRID,
		Action:    in.Action,
		Remarks:   in.Remarks,
		Fields:    in.Fields,
		CreatedAt: now,
	}, nil
}

func (s *Storage) ListActionsByNDR(ctx context.Context, ndrID string, limit, offset int) ([]*models.NDRAction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.db.Query(ctx, `
SELECT id, ndr_id, action, remarks, fields, created_at
FROM ndr_actions
WHERE ndr_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2 OFFSET $3
`, ndrID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "select ndr actions")
	}
	defer rows.Close()

	var out []*models.NDRAction
	for rows.Next() {
		var a models.NDRAction
		var fields any
		if err := rows.Scan(&a.ID, &a.NDRID, &a.Action, &a.Remarks, &fields, &a.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan ndr action")
		}
		if fields != nil {
			b, _ := json.Marshal(fields)
			m := map[string]string{}
			if json.Unmarshal(b, &m) == nil {
				a.Fields = m
			}
		}
		out = append(out, &a)
	}
	if rows.Err() != nil {
		return nil, errors.Wrap(rows.Err(), "rows")
	}
	return out, nil
}
