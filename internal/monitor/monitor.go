// Package monitor runs a single dashboard refresh outside the web server, for
// diagnostics from the command line.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"minirack-dashboard/internal/cache"
)

// ErrNoData is returned when the refresh produced no new device data.
var ErrNoData = errors.New("no device data received")

// Dashboard is the part of the aggregator a run needs.
type Dashboard interface {
	Refresh(ctx context.Context) bool
	Snapshot() cache.Snapshot
}

// Options holds the arguments for a monitor run.
type Options struct {
	Dashboard Dashboard
	// Out receives the snapshot as indented JSON; nothing is written when nil.
	Out io.Writer
}

// Summary holds high-level details about a monitoring run.
type Summary struct {
	Refreshed         bool
	DevicesChecked    int
	WirelessConnected int
	StartTime         time.Time
	Duration          time.Duration
}

// Run refreshes once, writes the resulting snapshot and returns a summary.
func Run(ctx context.Context, opts Options) (Summary, error) {
	summary := Summary{StartTime: time.Now()}
	w := opts.Out
	if w == nil {
		w = io.Discard
	}

	summary.Refreshed = opts.Dashboard.Refresh(ctx)
	snap := opts.Dashboard.Snapshot()
	summary.DevicesChecked = len(snap.Devices)
	if n := len(snap.ConnectedUsers); n > 0 {
		summary.WirelessConnected = snap.ConnectedUsers[n-1].Count
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return summary, fmt.Errorf("failed to write snapshot: %w", err)
	}

	summary.Duration = time.Since(summary.StartTime)
	if !summary.Refreshed {
		return summary, ErrNoData
	}
	return summary, nil
}
