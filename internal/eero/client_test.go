package eero_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/eero"
)

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		handler  http.HandlerFunc
		client   eero.Client
		lastPath string
		lastHdr  http.Header
	)

	BeforeEach(func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": []}`))
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastHdr = r.Header.Clone()
			handler(w, r)
		}))
		client = eero.New(eero.Options{
			BaseURL:   server.URL + "/2.2/",
			UserAgent: "MiniRack-Dashboard/test",
			Logger:    zerolog.New(GinkgoWriter),
		})
	})

	AfterEach(func() {
		server.Close()
	})

	It("requests the network's device listing with the token header", func() {
		_, err := client.FetchDevices(context.Background(), "12345", "tok-abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(lastPath).To(Equal("/2.2/networks/12345/devices"))
		Expect(lastHdr.Get(eero.TokenHeader)).To(Equal("tok-abc"))
		Expect(lastHdr.Get("User-Agent")).To(Equal("MiniRack-Dashboard/test"))
	})

	It("omits the token header when no token is stored", func() {
		_, err := client.FetchDevices(context.Background(), "12345", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(lastHdr.Values(eero.TokenHeader)).To(BeEmpty())
	})

	It("accepts the device array directly under data", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": [{"nickname": "TV", "connected": true}, {"hostname": "pi"}]}`))
		}
		devices, err := client.FetchDevices(context.Background(), "1", "t")
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(2))
		Expect(devices[0].Name()).To(Equal("TV"))
		Expect(devices[0].Connected).To(BeTrue())
		Expect(devices[1].Name()).To(Equal("pi"))
	})

	It("accepts the device array nested under data.devices", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data": {"count": 1, "devices": [{"nickname": "TV"}]}}`))
		}
		devices, err := client.FetchDevices(context.Background(), "1", "t")
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(1))
	})

	It("fails on a non-2xx status", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"meta": {"code": 401}}`))
		}
		devices, err := client.FetchDevices(context.Background(), "1", "expired")
		Expect(err).To(MatchError(eero.ErrUnexpectedStatus))
		Expect(devices).To(BeNil())
	})

	It("fails on a body without device data", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"meta": {"code": 200}}`))
		}
		devices, err := client.FetchDevices(context.Background(), "1", "t")
		Expect(err).To(MatchError(eero.ErrUnexpectedShape))
		Expect(devices).To(BeNil())
	})

	It("fails on malformed JSON", func() {
		handler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>maintenance</html>`))
		}
		_, err := client.FetchDevices(context.Background(), "1", "t")
		Expect(err).To(HaveOccurred())
	})

	It("gives up when the upstream is slower than the timeout", func() {
		release := make(chan struct{})
		defer close(release)
		handler = func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}
		slow := eero.New(eero.Options{BaseURL: server.URL, Timeout: 50 * time.Millisecond, Logger: zerolog.Nop()})
		_, err := slow.FetchDevices(context.Background(), "1", "t")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("DecodeDevices", func() {
	It("normalizes heterogeneous scalar fields", func() {
		body := []byte(`{"data": [{
			"nickname": null,
			"hostname": "Johns-iPhone",
			"mac": "aa:bb:cc:dd:ee:ff",
			"ips": ["192.168.4.20", null, "fe80::1"],
			"connected": true,
			"connection_type": "wireless",
			"wireless": "true",
			"connectivity": {"signal_avg": "-61 dBm", "score_bars": 4},
			"interface": {"frequency": 5.0}
		}]}`)

		devices, err := eero.DecodeDevices(body)
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(1))
		d := devices[0]
		Expect(d.Nickname).To(BeEmpty())
		Expect(d.Name()).To(Equal("Johns-iPhone"))
		Expect(d.IPs).To(Equal([]string{"192.168.4.20", "fe80::1"}))
		Expect(d.Wireless).To(BeTrue())
		Expect(d.SignalAvg).To(Equal("-61 dBm"))
		Expect(d.ScoreBars).To(Equal(4))
		Expect(d.Frequency).To(Equal("5.0"))
		Expect(d.IsWirelessConnected()).To(BeTrue())
	})

	It("leaves missing nested records empty", func() {
		devices, err := eero.DecodeDevices([]byte(`{"data": [{"connectivity": null}]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(devices[0].SignalAvg).To(BeEmpty())
		Expect(devices[0].ScoreBars).To(BeZero())
		Expect(devices[0].Frequency).To(BeEmpty())
	})

	It("skips entries that are not objects", func() {
		devices, err := eero.DecodeDevices([]byte(`{"data": [42, {"nickname": "ok"}]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(1))
	})
})
