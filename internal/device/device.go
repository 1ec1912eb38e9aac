// Package device holds the normalized device record shared by every upstream source.
// A record is rebuilt on every refresh and carries no identity across refreshes.
package device

import "strings"

// UnknownName is used when a device reports no usable name.
const UnknownName = "Unknown Device"

// Device is a normalized device record. Textual fields are empty when the upstream
// omitted them; Frequency and SignalAvg keep the upstream text verbatim so that
// display strings match what the router reported.
type Device struct {
	Nickname     string
	Hostname     string
	DisplayName  string
	ModelName    string
	Manufacturer string
	DeviceType   string
	MAC          string
	IPs          []string

	Connected      bool
	ConnectionType string
	Wireless       bool

	// Frequency is the radio frequency in GHz as reported, "" when absent.
	Frequency string
	// SignalAvg is the direct dBm reading as reported, "" when absent.
	SignalAvg string
	// ScoreBars is the coarse 0..5 bar score; 0 when absent.
	ScoreBars int
}

// OSHints are the free-text fields used for OS classification.
type OSHints struct {
	Manufacturer string
	DeviceType   string
	Hostname     string
	ModelName    string
	DisplayName  string
}

// Name returns the best display name for the device.
func (d Device) Name() string {
	for _, n := range []string{d.Nickname, d.Hostname, d.DisplayName} {
		if n != "" {
			return n
		}
	}
	return UnknownName
}

// IsWirelessConnected reports whether the device is connected over a wireless medium.
// Wired devices are excluded from every aggregate.
func (d Device) IsWirelessConnected() bool {
	if !d.Connected {
		return false
	}
	return strings.ToLower(d.ConnectionType) == "wireless" || d.Wireless
}

func (d Device) OSHints() OSHints {
	return OSHints{
		Manufacturer: d.Manufacturer,
		DeviceType:   d.DeviceType,
		Hostname:     d.Hostname,
		ModelName:    d.ModelName,
		DisplayName:  d.DisplayName,
	}
}

// FilterWirelessConnected returns the wireless-connected subset, preserving order.
func FilterWirelessConnected(devices []Device) []Device {
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if d.IsWirelessConnected() {
			out = append(out, d)
		}
	}
	return out
}
