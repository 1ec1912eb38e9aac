package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/fritzbox"
	"minirack-dashboard/internal/speedtest"
	"minirack-dashboard/internal/speedtest/speedtestfakes"
	"minirack-dashboard/internal/version"
)

func testConfig() config.Config {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("data-dir", GinkgoT().TempDir())
	cfg, err := config.Load(v)
	Expect(err).NotTo(HaveOccurred())
	return cfg
}

var _ = Describe("Commands", func() {
	It("prints the version", func() {
		out := &bytes.Buffer{}
		rootCmd.SetOut(out)
		rootCmd.SetArgs([]string{"version"})
		DeferCleanup(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetArgs(nil)
		})

		Expect(rootCmd.Execute()).To(Succeed())

		Expect(out.String()).To(Equal(version.Name + " " + version.Version + "\n"))
	})

	It("registers every subcommand", func() {
		var names []string
		for _, c := range rootCmd.Commands() {
			names = append(names, c.Name())
		}
		Expect(names).To(ContainElements("serve", "snapshot", "speedtest", "version"))
	})

	Describe("initLogging", func() {
		AfterEach(func() {
			viper.Set("log-format", config.LogFormatJSON)
			Expect(initLogging()).To(Succeed())
		})

		It("accepts the text format", func() {
			viper.Set("log-format", config.LogFormatText)

			Expect(initLogging()).To(Succeed())
		})

		It("rejects an unknown format", func() {
			viper.Set("log-format", "xml")

			err := initLogging()

			Expect(err).To(MatchError(config.ErrInvalid))
			Expect(err.Error()).To(ContainSubstring(`unknown log-format "xml"`))
		})
	})

	Describe("newSource", func() {
		It("uses the eero API with file credentials by default", func() {
			source, creds, closeSource := newSource(testConfig())
			defer closeSource()

			Expect(source).NotTo(BeNil())
			Expect(creds).NotTo(BeNil())
			_, isFritzbox := source.(*fritzbox.Source)
			Expect(isFritzbox).To(BeFalse())
		})

		It("uses the router login for the fritzbox provider", func() {
			cfg := testConfig()
			cfg.Provider = config.ProviderFritzbox
			cfg.FritzboxUsername = "admin"
			cfg.FritzboxPassword = "secret"

			source, creds, closeSource := newSource(cfg)
			defer closeSource()

			Expect(source).To(BeAssignableToTypeOf(&fritzbox.Source{}))
			Expect(creds).To(BeNil())
		})
	})

	Describe("runSpeedTest", func() {
		var (
			measurer *speedtestfakes.FakeMeasurer
			cmd      *cobra.Command
			out      *bytes.Buffer
		)

		BeforeEach(func() {
			measurer = &speedtestfakes.FakeMeasurer{}
			out = &bytes.Buffer{}
			cmd = &cobra.Command{}
			cmd.SetOut(out)
			cmd.SetContext(context.Background())
		})

		It("prints the finished result", func() {
			measurer.MeasureReturns(speedtest.Measurement{
				DownloadMbps: 95.5,
				UploadMbps:   10.25,
				Ping:         15 * time.Millisecond,
				Server:       "Example ISP",
			}, nil)

			Expect(runSpeedTest(cmd, testConfig(), measurer)).To(Succeed())

			var result speedtest.Result
			Expect(json.Unmarshal(out.Bytes(), &result)).To(Succeed())
			Expect(result.Download).To(Equal(95.5))
			Expect(result.Upload).To(Equal(10.25))
			Expect(result.Ping).To(Equal(15.0))
			Expect(result.Server).To(Equal("Example ISP"))
			Expect(result.ID).NotTo(BeEmpty())
		})

		It("fails when the measurement fails", func() {
			measurer.MeasureReturns(speedtest.Measurement{}, errors.New("no route to host"))

			err := runSpeedTest(cmd, testConfig(), measurer)

			Expect(err).To(MatchError("no route to host"))
			Expect(out.String()).To(ContainSubstring(`"error": "no route to host"`))
		})
	})
})
