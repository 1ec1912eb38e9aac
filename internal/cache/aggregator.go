// Package cache keeps the dashboard snapshot: rolling device-count and signal
// history plus the per-refresh device breakdowns. It is refreshed on demand from an
// upstream device source and never persisted.
package cache

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"minirack-dashboard/internal/classify"
	"minirack-dashboard/internal/credentials"
	"minirack-dashboard/internal/device"
	"minirack-dashboard/internal/speedtest"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o cachefakes/fake_credential_source.go . CredentialSource

// DefaultWindow is how much history the time series keep.
const DefaultWindow = 2 * time.Hour

// DefaultTokenMaxAge is the age after which a token is reported as expired.
const DefaultTokenMaxAge = 24 * time.Hour

// Refresh outcomes reported to the Observer.
const (
	RefreshOK    = "ok"
	RefreshEmpty = "empty"
	RefreshError = "error"
)

// Source lists the devices of a network. An error or an empty list both mean
// "no new data".
type Source interface {
	FetchDevices(ctx context.Context, networkID, token string) ([]device.Device, error)
}

type CredentialSource interface {
	Load() (credentials.Credentials, error)
}

// Observer receives refresh statistics, typically a metrics recorder.
type Observer interface {
	ObserveRefresh(outcome string)
	ObserveFetch(d time.Duration)
	ObserveAggregates(connected int, byOS, byBand map[string]int)
	ObserveSignal(avgDBM float64)
}

type nopObserver struct{}

func (nopObserver) ObserveRefresh(string) {}

func (nopObserver) ObserveFetch(time.Duration) {}

func (nopObserver) ObserveAggregates(int, map[string]int, map[string]int) {}

func (nopObserver) ObserveSignal(float64) {}

type Options struct {
	Source      Source
	Credentials CredentialSource
	Clock       Clock
	Observer    Observer
	Logger      zerolog.Logger
	// Window is the retention of the time series; DefaultWindow when zero.
	Window time.Duration
	// TokenMaxAge drives the token_expired flag; DefaultTokenMaxAge when zero.
	TokenMaxAge time.Duration
}

// Aggregator owns the snapshot. Refresh is the only writer of device data;
// PublishSpeedTest is the only writer of the speed test fields.
type Aggregator struct {
	source   Source
	creds    CredentialSource
	clock    Clock
	observer Observer
	log      zerolog.Logger
	window   time.Duration
	maxAge   time.Duration

	group singleflight.Group

	mu   sync.RWMutex
	snap Snapshot
}

func New(opts Options) *Aggregator {
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Observer == nil {
		opts.Observer = nopObserver{}
	}
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.TokenMaxAge <= 0 {
		opts.TokenMaxAge = DefaultTokenMaxAge
	}
	return &Aggregator{
		source:   opts.Source,
		creds:    opts.Credentials,
		clock:    opts.Clock,
		observer: opts.Observer,
		log:      opts.Logger,
		window:   opts.Window,
		maxAge:   opts.TokenMaxAge,
		snap:     newSnapshot(),
	}
}

// Refresh fetches the current device list and folds it into the snapshot. It
// reports whether the snapshot's device data changed. Concurrent callers share a
// single upstream fetch. The shared fetch is detached from the cancellation of
// whichever caller started it, so a leader going away does not fail its followers.
func (a *Aggregator) Refresh(ctx context.Context) bool {
	flightCtx := context.WithoutCancel(ctx)
	v, _, _ := a.group.Do("refresh", func() (any, error) {
		return a.refresh(flightCtx), nil
	})
	return v.(bool)
}

// GetSnapshot refreshes and then returns the snapshot.
func (a *Aggregator) GetSnapshot(ctx context.Context) Snapshot {
	a.Refresh(ctx)
	return a.Snapshot()
}

// Snapshot returns a copy of the current snapshot without refreshing.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap.clone()
}

// Devices returns the device table of the current snapshot without refreshing.
func (a *Aggregator) Devices() []DeviceView {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.snap.Devices)
}

// PublishSpeedTest records the speed test state in the snapshot.
func (a *Aggregator) PublishSpeedTest(running bool, result *speedtest.Result) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.snap.SpeedTestRunning = running
	if result != nil {
		r := *result
		a.snap.SpeedTestResult = &r
	}
}

func (a *Aggregator) refresh(ctx context.Context) bool {
	a.log.Debug().Msg("Starting cache update")

	creds := a.loadCredentials()

	start := time.Now()
	devices, err := a.source.FetchDevices(ctx, creds.NetworkID, creds.Token)
	a.observer.ObserveFetch(time.Since(start))
	if err != nil {
		a.log.Error().Err(err).Str("network_id", creds.NetworkID).Msg("Error fetching devices")
		a.observer.ObserveRefresh(RefreshError)
		return false
	}
	if len(devices) == 0 {
		a.log.Warn().Str("network_id", creds.NetworkID).Msg("No devices returned from API")
		a.observer.ObserveRefresh(RefreshEmpty)
		return false
	}

	agg, err := aggregate(devices)
	if err != nil {
		a.log.Error().Err(err).Msg("Error updating cache")
		a.observer.ObserveRefresh(RefreshError)
		return false
	}

	a.commit(a.clock.Now(), agg)

	a.observer.ObserveAggregates(agg.connected, agg.deviceOS, agg.bands)
	if agg.hasSignal {
		a.observer.ObserveSignal(agg.signalAvg)
	}
	a.observer.ObserveRefresh(RefreshOK)
	a.log.Info().
		Int("devices", len(devices)).
		Int("wireless_connected", agg.connected).
		Msg("Cache update complete")
	return true
}

// loadCredentials re-reads the credential files and refreshes the token age fields.
// Token problems are logged; the fetch still goes ahead and fails upstream.
func (a *Aggregator) loadCredentials() credentials.Credentials {
	if a.creds == nil {
		return credentials.Credentials{}
	}
	creds, err := a.creds.Load()
	if err != nil {
		a.log.Warn().Err(err).Msg("Credentials incomplete")
	}

	now := a.clock.Now()
	a.mu.Lock()
	defer a.mu.Unlock()
	if age, ok := creds.Age(now); ok {
		hours := age.Hours()
		a.snap.TokenAgeHours = &hours
		a.snap.TokenExpired = creds.Expired(now, a.maxAge)
	} else {
		a.snap.TokenAgeHours = nil
		a.snap.TokenExpired = false
	}
	return creds
}

// commit applies one successful aggregation. Everything is computed beforehand so
// the snapshot is never left half updated.
func (a *Aggregator) commit(now time.Time, agg aggregation) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Series timestamps never go backwards, even if the wall clock does.
	if n := len(a.snap.ConnectedUsers); n > 0 && now.Before(a.snap.ConnectedUsers[n-1].Timestamp) {
		now = a.snap.ConnectedUsers[n-1].Timestamp
	}
	if n := len(a.snap.SignalStrengthAvg); n > 0 && now.Before(a.snap.SignalStrengthAvg[n-1].Timestamp) {
		now = a.snap.SignalStrengthAvg[n-1].Timestamp
	}
	cutoff := now.Add(-a.window)

	users := append(slices.Clone(a.snap.ConnectedUsers), CountSample{Timestamp: now, Count: agg.connected})
	a.snap.ConnectedUsers = pruneCounts(users, cutoff)

	signals := slices.Clone(a.snap.SignalStrengthAvg)
	if agg.hasSignal {
		signals = append(signals, SignalSample{Timestamp: now, AvgDBM: agg.signalAvg})
	}
	a.snap.SignalStrengthAvg = pruneSignals(signals, cutoff)

	a.snap.DeviceOS = agg.deviceOS
	a.snap.FrequencyDistribution = agg.bands
	a.snap.Devices = agg.devices
	updated := now
	a.snap.LastUpdate = &updated
}

type aggregation struct {
	connected int
	deviceOS  map[string]int
	bands     map[string]int
	devices   []DeviceView
	signalAvg float64
	hasSignal bool
}

// aggregate builds the per-refresh breakdowns from the wireless-connected devices.
func aggregate(all []device.Device) (agg aggregation, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("aggregate devices: %v", p)
		}
	}()

	wireless := device.FilterWirelessConnected(all)
	agg.connected = len(wireless)
	agg.deviceOS = make(map[string]int, len(classify.OSCategories))
	for _, os := range classify.OSCategories {
		agg.deviceOS[string(os)] = 0
	}
	agg.bands = make(map[string]int, len(classify.Bands))
	for _, b := range classify.Bands {
		agg.bands[string(b)] = 0
	}
	agg.devices = make([]DeviceView, 0, len(wireless))

	var signalSum float64
	var signalCount int
	for _, d := range wireless {
		os := classify.ClassifyOS(d.OSHints())
		agg.deviceOS[string(os)]++

		freq, band := classify.ParseFrequency(d.Frequency)
		agg.bands[string(band)]++

		dbm, ok := signalDBM(d)
		dbmText := classify.NotAvailable
		if ok {
			dbmText = classify.FormatDBM(dbm)
			signalSum += dbm
			signalCount++
		}

		agg.devices = append(agg.devices, DeviceView{
			Name:          d.Name(),
			IP:            joinOr(d.IPs, classify.NotAvailable),
			MAC:           valueOr(d.MAC, classify.NotAvailable),
			Manufacturer:  valueOr(d.Manufacturer, "Unknown"),
			SignalPercent: classify.DBMToPercent(dbmText),
			SignalDBM:     dbmText,
			ScoreBars:     d.ScoreBars,
			SignalQuality: string(classify.SignalQuality(d.ScoreBars)),
			DeviceOS:      string(os),
			Frequency:     freq,
			FrequencyBand: string(band),
		})
	}

	slices.SortStableFunc(agg.devices, func(x, y DeviceView) int {
		return strings.Compare(strings.ToLower(x.Name), strings.ToLower(y.Name))
	})

	if signalCount > 0 {
		agg.signalAvg = math.Round(signalSum/float64(signalCount)*100) / 100
		agg.hasSignal = true
	}
	return agg, nil
}

// signalDBM prefers the direct reading and estimates from the bar score only when
// no reading was reported at all.
func signalDBM(d device.Device) (float64, bool) {
	if d.SignalAvg != "" {
		return classify.ParseDBM(d.SignalAvg)
	}
	if d.ScoreBars > 0 {
		return float64(classify.ScoreBarsToDBM(d.ScoreBars)), true
	}
	return 0, false
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
