package tracking

import (
	"context"
	"regexp"

	"github.com/pkg/errors"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

// ErrInvalidAWB is returned before any lookup when the AWB is malformed.
var ErrInvalidAWB = errors.New("invalid AWB format")

var awbRe = regexp.MustCompile(`^\d{10}$`)

// ValidateAWB accepts exactly 10 decimal digits.
func ValidateAWB(awb string) error {
	if !awbRe.MatchString(awb) {
		return errors.Wrapf(ErrInvalidAWB, "awb %q", awb)
	}
	return nil
}

type Client interface {
	GetTracking(ctx context.Context, awb string) (models.TrackingInfo, error)
}
