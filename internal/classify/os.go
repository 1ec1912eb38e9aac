// Package classify contains the pure classification and signal conversion helpers
// used when aggregating device telemetry.
package classify

import (
	"strings"

	"minirack-dashboard/internal/device"
)

// OS is a coarse operating system category.
type OS string

const (
	OSiOS     OS = "iOS"
	OSAndroid OS = "Android"
	OSWindows OS = "Windows"
	OSOther   OS = "Other"
)

// OSCategories lists every category in display order.
var OSCategories = []OS{OSiOS, OSAndroid, OSWindows, OSOther}

// Keyword lists are matched in order: Apple first, then Android, then Windows.
// Some vendor names (lenovo, asus) appear in both the Android and Windows lists;
// the Android list wins because it is checked first.
var (
	appleKeywords = []string{
		"apple", "iphone", "ipad", "ipod", "mac", "macbook", "airpods", "apple watch", "ios",
	}
	androidKeywords = []string{
		"android", "samsung", "google", "pixel", "huawei", "xiaomi",
		"oppo", "lg", "motorola", "sony", "oneplus", "htc", "asus",
		"lenovo", "nokia", "vivo", "realme", "redmi",
	}
	windowsKeywords = []string{
		"windows", "microsoft", "dell", "hp", "lenovo", "asus",
		"acer", "toshiba", "surface", "pc", "laptop",
	}
)

// ClassifyOS guesses the operating system of a device from its free-text fields.
func ClassifyOS(h device.OSHints) OS {
	deviceType := strings.ToLower(h.DeviceType)
	text := strings.Join([]string{
		strings.ToLower(h.Manufacturer),
		deviceType,
		strings.ToLower(h.Hostname),
		strings.ToLower(h.ModelName),
		strings.ToLower(h.DisplayName),
	}, " ")

	switch {
	case containsAny(text, appleKeywords):
		return OSiOS
	case containsAny(text, androidKeywords):
		return OSAndroid
	case containsAny(text, windowsKeywords):
		return OSWindows
	}

	switch {
	case deviceType == "":
		return OSOther
	case strings.Contains(deviceType, "phone"), strings.Contains(deviceType, "mobile"):
		return OSAndroid
	case strings.Contains(deviceType, "tablet"):
		return OSAndroid
	case strings.Contains(deviceType, "computer"), strings.Contains(deviceType, "laptop"):
		return OSWindows
	}
	return OSOther
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
