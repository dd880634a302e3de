package util

import (
	"math"
	"testing"
	"time"
)

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{name: "zero", km: 0, expected: "0 m"},
		{name: "meters", km: 0.35, expected: "350 m"},
		{name: "rounded meters", km: 0.1234, expected: "123 m"},
		{name: "exact kilometer", km: 1, expected: "1.0 km"},
		{name: "kilometers", km: 12.345, expected: "12.3 km"},
		{name: "negative", km: -3, expected: "0 m"},
		{name: "nan", km: math.NaN(), expected: "0 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.km); got != tt.expected {
				t.Fatalf("FormatDistance(%v) = %s, want %s", tt.km, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	items := make([]int, 250)
	for i := range items {
		items[i] = i
	}

	chunks := Chunk(items, 100)
	if len(chunks) != 3 {
		t.Fatalf("Chunk(250, 100) produced %d chunks, want 3", len(chunks))
	}

	sizes := []int{100, 100, 50}
	for i, chunk := range chunks {
		if len(chunk) != sizes[i] {
			t.Fatalf("chunk %d has %d items, want %d", i, len(chunk), sizes[i])
		}
	}

	if chunks[2][0] != 200 {
		t.Fatalf("third chunk starts at %d, want 200", chunks[2][0])
	}

	if got := Chunk([]int{}, 100); got != nil {
		t.Fatalf("Chunk of empty slice = %v, want nil", got)
	}

	if got := Chunk([]int{1, 2}, 0); len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("Chunk with size 0 = %v, want one chunk", got)
	}
}

func TestUnique(t *testing.T) {
	t.Parallel()

	got := Unique([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}

	if len(got) != len(want) {
		t.Fatalf("Unique() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Unique() = %v, want %v", got, want)
		}
	}
}
