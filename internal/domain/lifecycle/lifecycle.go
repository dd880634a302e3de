// Package lifecycle holds timing constants shared by process start/stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds start pings and graceful shutdown of servers and pools.
	DefaultTimeout = 10 * time.Second

	// DrainTimeout bounds how long a scheduler tick may keep running after shutdown is requested.
	DrainTimeout = 30 * time.Second
)
