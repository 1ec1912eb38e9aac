package cache

import (
	"maps"
	"slices"
	"time"

	"minirack-dashboard/internal/speedtest"
)

// CountSample is one point of the connected-users series.
type CountSample struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}

// SignalSample is one point of the average-signal series.
type SignalSample struct {
	Timestamp time.Time `json:"timestamp"`
	AvgDBM    float64   `json:"avg_dbm"`
}

// DeviceView is the per-device record shown in the dashboard table.
type DeviceView struct {
	Name          string `json:"name"`
	IP            string `json:"ip"`
	MAC           string `json:"mac"`
	Manufacturer  string `json:"manufacturer"`
	SignalPercent int    `json:"signal_avg"`
	SignalDBM     string `json:"signal_avg_dbm"`
	ScoreBars     int    `json:"score_bars"`
	SignalQuality string `json:"signal_quality"`
	DeviceOS      string `json:"device_os"`
	Frequency     string `json:"frequency"`
	FrequencyBand string `json:"frequency_band"`
}

// Snapshot is everything the dashboard shows. Values handed out by the
// Aggregator are copies and safe to keep.
type Snapshot struct {
	ConnectedUsers        []CountSample     `json:"connected_users"`
	DeviceOS              map[string]int    `json:"device_os"`
	FrequencyDistribution map[string]int    `json:"frequency_distribution"`
	SignalStrengthAvg     []SignalSample    `json:"signal_strength_avg"`
	Devices               []DeviceView      `json:"devices"`
	LastUpdate            *time.Time        `json:"last_update"`
	SpeedTestRunning      bool              `json:"speedtest_running"`
	SpeedTestResult       *speedtest.Result `json:"speedtest_result"`
	TokenAgeHours         *float64          `json:"token_age_hours"`
	TokenExpired          bool              `json:"token_expired"`
}

func newSnapshot() Snapshot {
	return Snapshot{
		ConnectedUsers:        []CountSample{},
		DeviceOS:              map[string]int{},
		FrequencyDistribution: map[string]int{},
		SignalStrengthAvg:     []SignalSample{},
		Devices:               []DeviceView{},
	}
}

func (s Snapshot) clone() Snapshot {
	c := s
	c.ConnectedUsers = slices.Clone(s.ConnectedUsers)
	c.SignalStrengthAvg = slices.Clone(s.SignalStrengthAvg)
	c.Devices = slices.Clone(s.Devices)
	c.DeviceOS = maps.Clone(s.DeviceOS)
	c.FrequencyDistribution = maps.Clone(s.FrequencyDistribution)
	if s.LastUpdate != nil {
		t := *s.LastUpdate
		c.LastUpdate = &t
	}
	if s.SpeedTestResult != nil {
		r := *s.SpeedTestResult
		c.SpeedTestResult = &r
	}
	if s.TokenAgeHours != nil {
		h := *s.TokenAgeHours
		c.TokenAgeHours = &h
	}
	return c
}

// pruneCounts drops samples at or before cutoff.
func pruneCounts(samples []CountSample, cutoff time.Time) []CountSample {
	out := make([]CountSample, 0, len(samples))
	for _, s := range samples {
		if s.Timestamp.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

func pruneSignals(samples []SignalSample, cutoff time.Time) []SignalSample {
	out := make([]SignalSample, 0, len(samples))
	for _, s := range samples {
		if s.Timestamp.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}
