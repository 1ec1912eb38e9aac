package classify

import (
	"math"
	"strconv"
	"strings"
)

// Band is a Wi-Fi frequency band bucket.
type Band string

const (
	Band24GHz   Band = "2.4GHz"
	Band5GHz    Band = "5GHz"
	Band6GHz    Band = "6GHz"
	BandUnknown Band = "Unknown"
)

// Bands lists every bucket in display order.
var Bands = []Band{Band24GHz, Band5GHz, Band6GHz, BandUnknown}

// ParseFrequency buckets a frequency given in GHz. It returns the display string
// (the raw value suffixed with " GHz") and the band. Missing, zero or unparseable
// values yield ("N/A", Unknown).
func ParseFrequency(raw string) (string, Band) {
	s := strings.TrimSpace(raw)
	if s == "" || s == NotAvailable {
		return NotAvailable, BandUnknown
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return NotAvailable, BandUnknown
	}

	display := s + " GHz"
	switch {
	case f >= 2.4 && f < 2.5:
		return display, Band24GHz
	case f >= 5.0 && f < 6.0:
		return display, Band5GHz
	case f >= 6.0 && f < 7.0:
		return display, Band6GHz
	}
	return display, BandUnknown
}
