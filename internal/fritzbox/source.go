package fritzbox

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"minirack-dashboard/internal/device"
)

// Source adapts a Client to the device source used by the cache. The session is
// opened lazily and reopened after a failed request.
type Source struct {
	client Client
	log    zerolog.Logger

	mu        sync.Mutex
	connected bool
}

func NewSource(client Client, log zerolog.Logger) *Source {
	return &Source{client: client, log: log}
}

// FetchDevices returns every known landevice. The router has a single network and
// its own login, so networkID and token are ignored.
func (s *Source) FetchDevices(ctx context.Context, _, _ string) ([]device.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		s.log.Debug().Msg("Connecting to Fritz!Box")
		if err := s.client.Connect(); err != nil {
			return nil, fmt.Errorf("failed to connect: %w", err)
		}
		s.connected = true
	}

	landevices, err := s.client.GetLandevices()
	if err != nil {
		s.connected = false
		return nil, fmt.Errorf("failed to fetch landevices: %w", err)
	}
	s.log.Debug().Int("count", len(landevices)).Msg("Fetched landevices")

	devices := make([]device.Device, 0, len(landevices))
	for _, ld := range landevices {
		devices = append(devices, ld.toDevice())
	}
	return devices, nil
}

// Close ends the router session if one is open.
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connected {
		s.client.Close()
		s.connected = false
	}
}

func (ld Landevice) toDevice() device.Device {
	d := device.Device{
		Nickname:       ld.FriendlyName,
		Manufacturer:   ld.Manufacturer,
		MAC:            ld.MAC,
		Connected:      ld.Active == "1",
		ConnectionType: "wired",
	}
	if ld.IPv4 != "" {
		d.IPs = []string{ld.IPv4}
	}
	if strings.Contains(strings.ToLower(ld.Type), "wlan") {
		d.ConnectionType = "wireless"
		d.Wireless = true
	}
	return d
}
