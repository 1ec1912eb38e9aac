package eero

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"minirack-dashboard/internal/device"
)

// scalar accepts any JSON scalar and keeps its textual form. null and absent
// values stay empty.
type scalar string

func (s *scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		*s = ""
	case b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = scalar(strings.TrimSpace(str))
	case b[0] == '{', b[0] == '[':
		*s = ""
	default:
		*s = scalar(b)
	}
	return nil
}

// boolish accepts true/false, 0/1 and their string forms.
type boolish bool

func (f *boolish) UnmarshalJSON(b []byte) error {
	var s scalar
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	v, err := strconv.ParseBool(strings.ToLower(string(s)))
	*f = boolish(err == nil && v)
	return nil
}

type rawConnectivity struct {
	SignalAvg scalar `json:"signal_avg"`
	ScoreBars scalar `json:"score_bars"`
}

type rawInterface struct {
	Frequency scalar `json:"frequency"`
}

type rawDevice struct {
	Nickname       scalar           `json:"nickname"`
	Hostname       scalar           `json:"hostname"`
	DisplayName    scalar           `json:"display_name"`
	ModelName      scalar           `json:"model_name"`
	Manufacturer   scalar           `json:"manufacturer"`
	DeviceType     scalar           `json:"device_type"`
	MAC            scalar           `json:"mac"`
	IPs            []scalar         `json:"ips"`
	Connected      boolish          `json:"connected"`
	ConnectionType scalar           `json:"connection_type"`
	Wireless       boolish          `json:"wireless"`
	Connectivity   *rawConnectivity `json:"connectivity"`
	Interface      *rawInterface    `json:"interface"`
}

func (r rawDevice) normalize() device.Device {
	d := device.Device{
		Nickname:       string(r.Nickname),
		Hostname:       string(r.Hostname),
		DisplayName:    string(r.DisplayName),
		ModelName:      string(r.ModelName),
		Manufacturer:   string(r.Manufacturer),
		DeviceType:     string(r.DeviceType),
		MAC:            string(r.MAC),
		Connected:      bool(r.Connected),
		ConnectionType: string(r.ConnectionType),
		Wireless:       bool(r.Wireless),
	}
	for _, ip := range r.IPs {
		if ip != "" {
			d.IPs = append(d.IPs, string(ip))
		}
	}
	if r.Connectivity != nil {
		d.SignalAvg = string(r.Connectivity.SignalAvg)
		d.ScoreBars = parseBars(string(r.Connectivity.ScoreBars))
	}
	if r.Interface != nil {
		d.Frequency = string(r.Interface.Frequency)
	}
	return d
}

// parseBars reads the bar score, leaving non-numeric, negative or non-finite
// values at 0.
func parseBars(s string) int {
	bars, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(bars) || math.IsInf(bars, 0) || bars < 0 || bars > math.MaxInt32 {
		return 0
	}
	return int(bars)
}

// envelope is the outer response. data is either the device array or an object
// holding it under "devices".
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// DecodeDevices normalizes a device listing response body. Both response shapes
// seen from the vendor API are accepted. A device entry that fails to decode is
// skipped rather than failing the whole listing.
func DecodeDevices(body []byte) ([]device.Device, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	items, err := deviceItems(env.Data)
	if err != nil {
		return nil, err
	}

	devices := make([]device.Device, 0, len(items))
	for _, item := range items {
		var raw rawDevice
		if err := json.Unmarshal(item, &raw); err != nil {
			continue
		}
		devices = append(devices, raw.normalize())
	}
	return devices, nil
}

func deviceItems(data json.RawMessage) ([]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrUnexpectedShape
	}
	switch data[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	case '{':
		var nested struct {
			Devices []json.RawMessage `json:"devices"`
		}
		if err := json.Unmarshal(data, &nested); err != nil {
			return nil, err
		}
		if nested.Devices == nil {
			return nil, ErrUnexpectedShape
		}
		return nested.Devices, nil
	}
	return nil, ErrUnexpectedShape
}
