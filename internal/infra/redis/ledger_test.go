package redis

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"courier/config"
	"courier/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryLedger_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	cfg := &config.Config{Worker: &config.WorkerConfig{DedupeTTL: time.Hour}}

	ledger := NewDeliveryLedger(LedgerParams{Client: newClient(store, "t"), Config: cfg, Logger: slog.Default()})

	require.NoError(t, ledger.MarkDelivered(ctx, []string{"job-1:tok-a", "job-1:tok-b"}))

	delivered, err := ledger.FilterDelivered(ctx, []string{"job-1:tok-a", "job-1:tok-c", "job-1:tok-b"})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"job-1:tok-a": true, "job-1:tok-b": true}, delivered)

	assert.Equal(t, time.Hour, store.ttls["t:push-delivered:job-1:tok-a"])
}

func TestDeliveryLedger_DefaultTTL(t *testing.T) {
	store := newMemoryStore()
	ledger := NewDeliveryLedger(LedgerParams{Client: newClient(store, "t"), Config: &config.Config{}, Logger: slog.Default()})

	require.NoError(t, ledger.MarkDelivered(context.Background(), []string{"k"}))
	assert.Equal(t, 24*time.Hour, store.ttls["t:push-delivered:k"])
}

func TestDeliveryLedger_ReadError(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("connection reset")
	ledger := NewDeliveryLedger(LedgerParams{Client: newClient(store, "t"), Config: &config.Config{}, Logger: slog.Default()})

	_, err := ledger.FilterDelivered(context.Background(), []string{"k"})
	assert.Error(t, err)
}

func TestDeliveryLedger_NoopWithoutRedis(t *testing.T) {
	ctx := context.Background()
	ledger := NewDeliveryLedger(LedgerParams{Config: &config.Config{}, Logger: slog.Default()})

	require.NoError(t, ledger.MarkDelivered(ctx, []string{"k"}))

	delivered, err := ledger.FilterDelivered(ctx, []string{"k"})
	require.NoError(t, err)
	assert.Empty(t, delivered)
}
