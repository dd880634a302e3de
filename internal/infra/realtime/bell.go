package realtime

import (
	"context"
	"io"
	"os"

	"courier/config"
	"courier/internal/domain/service"
	"courier/internal/errors"
)

// bellPlayer rings the terminal bell.
type bellPlayer struct {
	out io.Writer
}

// NewBellPlayer returns the new-order alert for orderwatch, or nil when sound is off.
func NewBellPlayer(cfg *config.Config) service.SoundPlayer {
	if cfg.OrderWatch != nil && !cfg.OrderWatch.Sound {
		return nil
	}

	return &bellPlayer{out: os.Stdout}
}

func (p *bellPlayer) Play(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	_, err := io.WriteString(p.out, "\a")

	return errors.Wrap(err, "failed to ring bell")
}
