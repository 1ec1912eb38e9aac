package fritzbox

// Landevice is one entry of the router's home network device list. Flags are
// reported as "0"/"1" strings.
type Landevice struct {
	UID          string `json:"UID"`
	FriendlyName string `json:"friendly_name"`
	MAC          string `json:"mac"`
	IPv4         string `json:"ipv4"`
	Active       string `json:"active"`
	Type         string `json:"type"`
	Manufacturer string `json:"manufacturer"`
}

type LandeviceResponse struct {
	Landevice []Landevice `json:"landevice"`
}
