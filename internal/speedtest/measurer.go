package speedtest

import (
	"context"
	"errors"
	"fmt"

	speedtestnet "github.com/showwin/speedtest-go/speedtest"
)

var ErrNoServer = errors.New("no speed test server available")

// NetMeasurer measures against the closest public speedtest.net server.
type NetMeasurer struct{}

func (NetMeasurer) Measure(ctx context.Context) (Measurement, error) {
	client := speedtestnet.New()

	servers, err := client.FetchServerListContext(ctx)
	if err != nil {
		return Measurement{}, fmt.Errorf("fetch servers: %w", err)
	}
	targets, err := servers.FindServer([]int{})
	if err != nil {
		return Measurement{}, fmt.Errorf("select server: %w", err)
	}
	if len(targets) == 0 {
		return Measurement{}, ErrNoServer
	}
	best := targets[0]

	if err := best.PingTestContext(ctx, nil); err != nil {
		return Measurement{}, fmt.Errorf("ping: %w", err)
	}
	if err := best.DownloadTestContext(ctx); err != nil {
		return Measurement{}, fmt.Errorf("download: %w", err)
	}
	if err := best.UploadTestContext(ctx); err != nil {
		return Measurement{}, fmt.Errorf("upload: %w", err)
	}

	return Measurement{
		DownloadMbps: best.DLSpeed.Mbps(),
		UploadMbps:   best.ULSpeed.Mbps(),
		Ping:         best.Latency,
		Server:       fmt.Sprintf("%s (%s)", best.Sponsor, best.Name),
	}, nil
}
