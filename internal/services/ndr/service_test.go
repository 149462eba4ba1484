package ndr

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

type fakeFetcher struct {
	path  string
	calls int
	body  string
	err   error
}

func (f *fakeFetcher) GetJSON(ctx context.Context, path string, out any) error {
	f.path = path
	f.calls++
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.body), out)
}

type fakeCache struct {
	m map[string][]byte
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, ok := c.m[key]
	return b, ok, nil
}
func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.m[key] = value
	return nil
}
func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.m, key)
	return nil
}

func TestService_GetNDR_Transforms(t *testing.T) {
	f := &fakeFetcher{body: `{"awb":"1234567890","attempt_history":[],"delivery_address":{"city":"Pune"}}`}
	s := New(f, nil, 0)

	n, err := s.GetNDR(context.Background(), "ndr-1")
	require.NoError(t, err)
	require.Equal(t, "/api/v2/seller/ndr/ndr-1", f.path)
	require.Equal(t, "1234567890", n.AWB)
	require.Equal(t, models.LastAttemptPlaceholder, n.LastAttemptDate)
	require.Equal(t, "India", n.Customer.Country)
}

func TestService_GetNDR_EmptyID(t *testing.T) {
	s := New(&fakeFetcher{}, nil, 0)
	_, err := s.GetNDR(context.Background(), "")
	require.Error(t, err)
}

func TestService_GetNDR_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	s := New(&fakeFetcher{err: boom}, nil, 0)
	_, err := s.GetNDR(context.Background(), "ndr-1")
	require.True(t, errors.Is(err, boom))
}

func TestService_GetNDR_CacheHitSkipsFetch(t *testing.T) {
	f := &fakeFetcher{}
	c := &fakeCache{m: map[string][]byte{}}
	s := New(f, c, 10*time.Minute)

	want := models.NDR{AWB: "1234567890", Status: models.NDRStatusActionRequired}
	b, _ := json.Marshal(want)
	c.m["ndr:ndr-1:view"] = b

	n, err := s.GetNDR(context.Background(), "ndr-1")
	require.NoError(t, err)
	require.Equal(t, "1234567890", n.AWB)
	require.Zero(t, f.calls)
}

func TestService_GetNDR_MissFillsCache(t *testing.T) {
	f := &fakeFetcher{body: `{"awb":"1234567890"}`}
	c := &fakeCache{m: map[string][]byte{}}
	s := New(f, c, 10*time.Minute)

	_, err := s.GetNDR(context.Background(), "ndr-1")
	require.NoError(t, err)
	require.Contains(t, c.m, "ndr:ndr-1:view")

	_, err = s.GetNDR(context.Background(), "ndr-1")
	require.NoError(t, err)
	require.Equal(t, 1, f.calls)
}

func TestService_Invalidate(t *testing.T) {
	c := &fakeCache{m: map[string][]byte{"ndr:ndr-1:view": []byte("{}")}}
	s := New(&fakeFetcher{}, c, time.Minute)

	require.NoError(t, s.Invalidate(context.Background(), "ndr-1"))
	require.NotContains(t, c.m, "ndr:ndr-1:view")
}
