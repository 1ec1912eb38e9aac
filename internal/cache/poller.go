package cache

import (
	"context"
	"time"
)

// Poll refreshes the aggregator every interval until ctx is done. A non-positive
// interval disables polling and Poll returns immediately.
func (a *Aggregator) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	a.log.Info().Dur("interval", interval).Msg("Starting background refresh")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		a.Refresh(ctx)
		select {
		case <-ctx.Done():
			a.log.Info().Msg("Background refresh stopped")
			return
		case <-ticker.C:
		}
	}
}
