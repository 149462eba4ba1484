package pgndr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sohamroy2003/Frontend-Rocketrybox/internal/models"
)

func TestPGNDR_ActionsFlow(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "admin",
			"POSTGRES_PASSWORD": "admin",
			"POSTGRES_DB":       "dashboard_test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := "postgres://admin:admin@" + host + ":" + port.Port() + "/dashboard_test?sslmode=disable"
	st, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(st.Close)

	first, err := st.InsertAction(ctx, models.NDRActionInput{
		NDRID:   "ndr-1",
		Action:  "reattempt",
		Remarks: "please retry tomorrow",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := st.InsertAction(ctx, models.NDRActionInput{
		NDRID:  "ndr-1",
		Action: "update-address",
		Fields: map[string]string{"address_line1": "new street 5", "city": "Pune"},
	})
	require.NoError(t, err)

	got, err := st.ListActionsByNDR(ctx, "ndr-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Newest first.
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, "Pune", got[0].Fields["city"])
	require.Equal(t, first.ID, got[1].ID)
	require.Nil(t, got[1].Fields)

	other, err := st.ListActionsByNDR(ctx, "ndr-2", 10, 0)
	require.NoError(t, err)
	require.Empty(t, other)
}
