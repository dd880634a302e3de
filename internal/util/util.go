package util

import (
	"fmt"
	"math"
	"time"
)

// FormatDistance renders a distance for display: whole meters below one kilometer, one decimal above.
// Negative and NaN inputs render as "0 m".
func FormatDistance(km float64) string {
	if math.IsNaN(km) || km < 0 {
		km = 0
	}

	if km < 1 {
		return fmt.Sprintf("%d m", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1f km", km)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// Chunk splits items into consecutive slices of at most size elements.
// The chunks share the backing array of items. size <= 0 yields a single chunk.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}

	if size <= 0 || size >= len(items) {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}

// Unique returns items without duplicates, keeping first-seen order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}

	return out
}
