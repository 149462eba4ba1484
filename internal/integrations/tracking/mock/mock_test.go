package mock

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/integrations/tracking"
	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(seed int64) *Client {
	return New(rand.New(rand.NewSource(seed)), fixedClock{testNow}).WithLatency(0)
}

func TestGetTracking_InvalidAWB(t *testing.T) {
	c := newTestClient(1)
	for _, awb := range []string{"", "123", "12345678901", "abcdefghij", "12345678 0", "123456789O"} {
		_, err := c.GetTracking(context.Background(), awb)
		require.Error(t, err, awb)
		require.True(t, errors.Is(err, tracking.ErrInvalidAWB), awb)
	}
}

func TestGetTracking_Canned1234567890(t *testing.T) {
	c := newTestClient(1)
	info, err := c.GetTracking(context.Background(), "1234567890")
	require.NoError(t, err)
	require.Equal(t, models.TrackingStatusInTransit, info.CurrentStatus)
	require.Len(t, info.Events, 3)
	require.Equal(t, testNow.Add(-6*time.Hour), info.Events[0].Timestamp)
}

func TestGetTracking_Canned9876543210(t *testing.T) {
	c := newTestClient(1)
	info, err := c.GetTracking(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Equal(t, models.TrackingStatusDelivered, info.CurrentStatus)
	require.Len(t, info.Events, 4)
	require.Equal(t, models.TrackingStatusDelivered, info.Events[0].Status)
}

func TestGetTracking_Canned5556667778(t *testing.T) {
	c := newTestClient(1)
	info, err := c.GetTracking(context.Background(), "5556667778")
	require.NoError(t, err)
	require.Equal(t, models.TrackingStatusOutForDelivery, info.CurrentStatus)
	require.Len(t, info.Events, 2)
}

func TestGetTracking_Synthesized(t *testing.T) {
	c := newTestClient(42)

	for i := 0; i < 50; i++ {
		awb := fmt.Sprintf("%010d", 2000000000+i)
		info, err := c.GetTracking(context.Background(), awb)
		require.NoError(t, err)

		require.Equal(t, awb, info.AWB)
		require.Equal(t, models.TrackingStatusInTransit, info.CurrentStatus)
		require.NotEqual(t, info.Origin, info.Destination)
		require.Equal(t, testNow.Add(72*time.Hour), info.ExpectedDelivery)

		require.NotEmpty(t, info.Events)
		for j := 1; j < len(info.Events); j++ {
			require.False(t, info.Events[j].Timestamp.After(info.Events[j-1].Timestamp),
				"events must be ordered most recent first")
		}

		last := info.Events[len(info.Events)-1]
		require.Equal(t, models.TrackingStatusShipped, last.Status)
		require.Equal(t, testNow.Add(-48*time.Hour), last.Timestamp)
		require.Equal(t, info.Origin, last.Location)
	}
}

func TestGetTracking_SynthesizedHopOffsets(t *testing.T) {
	c := newTestClient(7)
	info, err := c.GetTracking(context.Background(), "2999999999")
	require.NoError(t, err)

	// Hops sit at now-24h, now-16h, now-8h depending on how many were rolled.
	hops := info.Events[:len(info.Events)-1]
	require.GreaterOrEqual(t, len(hops), 1)
	require.LessOrEqual(t, len(hops), 3)
	for i, ev := range hops {
		wantOffset := time.Duration(24-8*(len(hops)-1-i)) * time.Hour
		require.Equal(t, testNow.Add(-wantOffset), ev.Timestamp)
	}
}

func TestGetTracking_ContextCanceledDuringLatency(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)), fixedClock{testNow}).WithLatency(5 * time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetTracking(ctx, "1234567890")
	require.ErrorIs(t, err, context.Canceled)
}
