package classify

import (
	"math"
	"strconv"
	"strings"
)

// Quality is a human readable signal rating derived from the bar score.
type Quality string

const (
	QualityExcellent Quality = "Excellent"
	QualityVeryGood  Quality = "Very Good"
	QualityGood      Quality = "Good"
	QualityFair      Quality = "Fair"
	QualityPoor      Quality = "Poor"
	QualityUnknown   Quality = "Unknown"
)

// NotAvailable is shown for readings the upstream did not report.
const NotAvailable = "N/A"

var barsToDBM = map[int]int{5: -45, 4: -55, 3: -65, 2: -75, 1: -85, 0: -90}

// ScoreBarsToDBM estimates a dBm reading from a 0..5 bar score.
// Out of range scores map to -90.
func ScoreBarsToDBM(bars int) int {
	if dbm, ok := barsToDBM[bars]; ok {
		return dbm
	}
	return -90
}

// SignalQuality rates a bar score. Zero and negative scores are Unknown.
func SignalQuality(bars int) Quality {
	switch {
	case bars >= 5:
		return QualityExcellent
	case bars == 4:
		return QualityVeryGood
	case bars == 3:
		return QualityGood
	case bars == 2:
		return QualityFair
	case bars == 1:
		return QualityPoor
	}
	return QualityUnknown
}

// ParseDBM parses a dBm reading such as "-61", "-61.5" or "-61 dBm". NaN and
// infinities are rejected.
func ParseDBM(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == NotAvailable {
		return 0, false
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "dBm"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// DBMToPercent maps a dBm reading onto 0..100: -50 and above is 100, -100 and below is 0,
// linear in between. Unparseable input yields 0.
func DBMToPercent(raw string) int {
	dbm, ok := ParseDBM(raw)
	if !ok {
		return 0
	}
	switch {
	case dbm >= -50:
		return 100
	case dbm <= -100:
		return 0
	}
	return int(2 * (dbm + 100))
}

// FormatDBM renders a reading the way the dashboard displays it, e.g. "-65 dBm".
func FormatDBM(dbm float64) string {
	return strconv.FormatFloat(dbm, 'f', -1, 64) + " dBm"
}
