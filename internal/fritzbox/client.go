// Package fritzbox reads the home network device list from a Fritz!Box router. It is
// an alternative device source for installations without an eero mesh.
package fritzbox

import (
	"encoding/json"
	"fmt"
	"net/http"

	fritzboxlib "github.com/ByteSizedMarius/go-fritzbox-api/v2"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o fritzboxfakes/fake_client.go . Client

// DefaultURL is the router address used when none is configured.
const DefaultURL = "http://192.168.178.1"

const landevicePath = "/api/v0/landevice"

type Client interface {
	Connect() error
	GetLandevices() ([]Landevice, error)
	Close()
}

type fritzboxClient struct {
	client *fritzboxlib.Client
}

func New(baseURL, username, password string) Client {
	c := fritzboxlib.New(username, password)
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c.BaseUrl = baseURL
	return &fritzboxClient{client: c}
}

func (c *fritzboxClient) Connect() error {
	return c.client.Connect()
}

func (c *fritzboxClient) Close() {
	c.client.Close()
}

func (c *fritzboxClient) GetLandevices() ([]Landevice, error) {
	jsonData, status, err := c.client.RestGet(landevicePath)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("GET %s: HTTP %d", landevicePath, status)
	}

	var resp LandeviceResponse
	if err := json.Unmarshal(jsonData, &resp); err != nil {
		return nil, err
	}
	return resp.Landevice, nil
}
