package fritzbox_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/device"
	"minirack-dashboard/internal/fritzbox"
	"minirack-dashboard/internal/fritzbox/fritzboxfakes"
)

var _ = Describe("Source", func() {
	var (
		fakeClient *fritzboxfakes.FakeClient
		source     *fritzbox.Source
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeClient = &fritzboxfakes.FakeClient{}
		source = fritzbox.NewSource(fakeClient, zerolog.New(GinkgoWriter))
	})

	It("maps landevices to devices", func() {
		fakeClient.GetLandevicesReturns([]fritzbox.Landevice{
			{UID: "uid1", FriendlyName: "Pixel-7", MAC: "00:11:22:33:44:55", IPv4: "192.168.178.20", Active: "1", Type: "WLAN"},
			{UID: "uid2", FriendlyName: "nas", MAC: "00:11:22:33:44:66", Active: "1", Type: "ethernet"},
			{UID: "uid3", FriendlyName: "tablet", Active: "0", Type: "wlan"},
		}, nil)

		devices, err := source.FetchDevices(ctx, "ignored", "ignored")

		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(Equal([]device.Device{
			{Nickname: "Pixel-7", MAC: "00:11:22:33:44:55", IPs: []string{"192.168.178.20"}, Connected: true, ConnectionType: "wireless", Wireless: true},
			{Nickname: "nas", MAC: "00:11:22:33:44:66", Connected: true, ConnectionType: "wired"},
			{Nickname: "tablet", ConnectionType: "wireless", Wireless: true},
		}))
		Expect(device.FilterWirelessConnected(devices)).To(HaveLen(1))
	})

	It("connects once across fetches", func() {
		fakeClient.GetLandevicesReturns(nil, nil)

		_, _ = source.FetchDevices(ctx, "", "")
		_, _ = source.FetchDevices(ctx, "", "")

		Expect(fakeClient.ConnectCallCount()).To(Equal(1))
		Expect(fakeClient.GetLandevicesCallCount()).To(Equal(2))
	})

	It("reports connection failures", func() {
		fakeClient.ConnectReturns(errors.New("bad credentials"))

		devices, err := source.FetchDevices(ctx, "", "")

		Expect(err).To(MatchError(ContainSubstring("bad credentials")))
		Expect(devices).To(BeNil())
		Expect(fakeClient.GetLandevicesCallCount()).To(BeZero())
	})

	It("reconnects after a failed fetch", func() {
		fakeClient.GetLandevicesReturnsOnCall(0, nil, errors.New("session expired"))
		fakeClient.GetLandevicesReturnsOnCall(1, []fritzbox.Landevice{{FriendlyName: "x", Active: "1"}}, nil)

		_, err := source.FetchDevices(ctx, "", "")
		Expect(err).To(HaveOccurred())

		devices, err := source.FetchDevices(ctx, "", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(devices).To(HaveLen(1))
		Expect(fakeClient.ConnectCallCount()).To(Equal(2))
	})

	It("does not call the router for a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := source.FetchDevices(cancelled, "", "")

		Expect(err).To(MatchError(context.Canceled))
		Expect(fakeClient.ConnectCallCount()).To(BeZero())
	})

	It("closes an open session", func() {
		fakeClient.GetLandevicesReturns(nil, nil)
		source.Close()
		Expect(fakeClient.CloseCallCount()).To(BeZero())

		_, _ = source.FetchDevices(ctx, "", "")
		source.Close()

		Expect(fakeClient.CloseCallCount()).To(Equal(1))
	})
})
