package monitor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/cache"
	"minirack-dashboard/internal/device"
	"minirack-dashboard/internal/eero/eerofakes"
	"minirack-dashboard/internal/monitor"
)

var _ = Describe("Run", func() {
	var (
		source *eerofakes.FakeClient
		agg    *cache.Aggregator
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		source = &eerofakes.FakeClient{}
		agg = cache.New(cache.Options{Source: source, Logger: zerolog.New(GinkgoWriter)})
		out = &bytes.Buffer{}
	})

	It("refreshes once and prints the snapshot", func() {
		source.FetchDevicesReturns([]device.Device{
			{Hostname: "iPad", Manufacturer: "Apple", Connected: true, Wireless: true, ScoreBars: 4},
			{Hostname: "Pixel", Manufacturer: "Google", Connected: true, Wireless: true, ScoreBars: 2},
			{Hostname: "nas", Connected: true, ConnectionType: "wired"},
		}, nil)

		summary, err := monitor.Run(context.Background(), monitor.Options{Dashboard: agg, Out: out})

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Refreshed).To(BeTrue())
		Expect(summary.DevicesChecked).To(Equal(2))
		Expect(summary.WirelessConnected).To(Equal(2))
		Expect(source.FetchDevicesCallCount()).To(Equal(1))

		var snap cache.Snapshot
		Expect(json.Unmarshal(out.Bytes(), &snap)).To(Succeed())
		Expect(snap.DeviceOS).To(HaveKeyWithValue("iOS", 1))
		Expect(out.String()).To(ContainSubstring("\n  \"connected_users\""))
	})

	It("reports when no data arrived", func() {
		source.FetchDevicesReturns(nil, errors.New("unauthorized"))

		summary, err := monitor.Run(context.Background(), monitor.Options{Dashboard: agg, Out: out})

		Expect(err).To(MatchError(monitor.ErrNoData))
		Expect(summary.Refreshed).To(BeFalse())
		Expect(summary.DevicesChecked).To(BeZero())
		Expect(out.String()).To(ContainSubstring(`"devices": []`))
	})

	It("writes nothing without an output", func() {
		source.FetchDevicesReturns([]device.Device{{Connected: true, Wireless: true}}, nil)

		_, err := monitor.Run(context.Background(), monitor.Options{Dashboard: agg})

		Expect(err).NotTo(HaveOccurred())
	})
})
