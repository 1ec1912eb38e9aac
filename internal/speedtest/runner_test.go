package speedtest_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"minirack-dashboard/internal/speedtest"
	"minirack-dashboard/internal/speedtest/speedtestfakes"
)

var _ = Describe("Runner", func() {
	var (
		measurer  *speedtestfakes.FakeMeasurer
		publisher *speedtestfakes.FakePublisher
		runner    *speedtest.Runner
		now       time.Time
	)

	BeforeEach(func() {
		measurer = &speedtestfakes.FakeMeasurer{}
		publisher = &speedtestfakes.FakePublisher{}
		now = time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
		runner = speedtest.NewRunner(speedtest.Options{
			Measurer:  measurer,
			Publisher: publisher,
			Logger:    zerolog.New(GinkgoWriter),
			Now:       func() time.Time { return now },
		})
	})

	wait := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		Expect(runner.Wait(ctx)).To(Succeed())
	}

	It("reports nothing before the first run", func() {
		running, result := runner.Status()
		Expect(running).To(BeFalse())
		Expect(result).To(BeNil())
	})

	It("records rounded metrics on success", func() {
		measurer.MeasureReturns(speedtest.Measurement{
			DownloadMbps: 312.4567,
			UploadMbps:   41.111,
			Ping:         12340 * time.Microsecond,
			Server:       "Example ISP (Springfield)",
		}, nil)

		id, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		Expect(id).NotTo(BeEmpty())
		wait()

		running, result := runner.Status()
		Expect(running).To(BeFalse())
		Expect(result).NotTo(BeNil())
		Expect(result.ID).To(Equal(id))
		Expect(result.Failed()).To(BeFalse())
		Expect(result.Download).To(Equal(312.46))
		Expect(result.Upload).To(Equal(41.11))
		Expect(result.Ping).To(Equal(12.34))
		Expect(*result.Timestamp).To(Equal(now))
	})

	It("records the error message on failure", func() {
		measurer.MeasureReturns(speedtest.Measurement{}, errors.New("no route to host"))

		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		running, result := runner.Status()
		Expect(running).To(BeFalse())
		Expect(result.Failed()).To(BeTrue())
		Expect(result.Error).To(Equal("no route to host"))
		Expect(result.Timestamp).To(BeNil())
	})

	It("keeps zero readings in the encoded result", func() {
		measurer.MeasureReturns(speedtest.Measurement{UploadMbps: 0.004}, nil)

		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		_, result := runner.Status()
		body, err := json.Marshal(result)
		Expect(err).NotTo(HaveOccurred())

		var fields map[string]any
		Expect(json.Unmarshal(body, &fields)).To(Succeed())
		Expect(fields).To(HaveKeyWithValue("download", BeEquivalentTo(0)))
		Expect(fields).To(HaveKeyWithValue("upload", BeEquivalentTo(0)))
		Expect(fields).To(HaveKeyWithValue("ping", BeEquivalentTo(0)))
		Expect(fields).To(HaveKey("timestamp"))
		Expect(fields).NotTo(HaveKey("error"))
	})

	It("encodes a failed run as the error alone", func() {
		measurer.MeasureReturns(speedtest.Measurement{}, errors.New("no route to host"))

		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		_, result := runner.Status()
		body, err := json.Marshal(result)
		Expect(err).NotTo(HaveOccurred())

		var fields map[string]any
		Expect(json.Unmarshal(body, &fields)).To(Succeed())
		Expect(fields).To(HaveKeyWithValue("error", "no route to host"))
		Expect(fields).NotTo(HaveKey("download"))
		Expect(fields).NotTo(HaveKey("ping"))
	})

	It("recovers from a panicking measurement", func() {
		measurer.MeasureCalls(func(context.Context) (speedtest.Measurement, error) {
			panic("boom")
		})

		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		running, result := runner.Status()
		Expect(running).To(BeFalse())
		Expect(result.Failed()).To(BeTrue())
	})

	It("rejects a start while a run is in flight", func() {
		release := make(chan struct{})
		measurer.MeasureCalls(func(context.Context) (speedtest.Measurement, error) {
			<-release
			return speedtest.Measurement{DownloadMbps: 1}, nil
		})

		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())

		_, err = runner.Start()
		Expect(err).To(MatchError(speedtest.ErrRunning))
		running, _ := runner.Status()
		Expect(running).To(BeTrue())

		close(release)
		wait()
		Expect(measurer.MeasureCallCount()).To(Equal(1))

		running, result := runner.Status()
		Expect(running).To(BeFalse())
		Expect(result.Download).To(Equal(1.0))
	})

	It("allows a new run after the previous one finished", func() {
		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		_, err = runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()
		Expect(measurer.MeasureCallCount()).To(Equal(2))
	})

	It("publishes the running flag on start and the result on completion", func() {
		_, err := runner.Start()
		Expect(err).NotTo(HaveOccurred())
		wait()

		Expect(publisher.PublishSpeedTestCallCount()).To(Equal(2))
		running, result := publisher.PublishSpeedTestArgsForCall(0)
		Expect(running).To(BeTrue())
		Expect(result).To(BeNil())

		running, result = publisher.PublishSpeedTestArgsForCall(1)
		Expect(running).To(BeFalse())
		Expect(result).NotTo(BeNil())
	})
})
