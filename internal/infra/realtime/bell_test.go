package realtime

import (
	"bytes"
	"context"
	"testing"

	"courier/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBellPlayer(t *testing.T) {
	var out bytes.Buffer
	player := &bellPlayer{out: &out}

	require.NoError(t, player.Play(context.Background()))
	assert.Equal(t, "\a", out.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, player.Play(ctx))
	assert.Equal(t, "\a", out.String())
}

func TestNewBellPlayer(t *testing.T) {
	assert.Nil(t, NewBellPlayer(&config.Config{OrderWatch: &config.OrderWatchConfig{Sound: false}}))
	assert.NotNil(t, NewBellPlayer(&config.Config{OrderWatch: &config.OrderWatchConfig{Sound: true}}))
}
