package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
)

var _ = Describe("Load", func() {
	var v *viper.Viper

	BeforeEach(func() {
		v = viper.New()
		config.SetDefaults(v)
	})

	It("applies the defaults", func() {
		c, err := config.Load(v)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Listen).To(Equal(":8080"))
		Expect(c.TokenFile).To(Equal("/opt/minirack/.eero_token"))
		Expect(c.NetworkConfigFile).To(Equal("/opt/minirack/.config.json"))
		Expect(c.APIBase).To(Equal("https://api-user.e2ro.com/2.2"))
		Expect(c.FetchTimeout).To(Equal(10 * time.Second))
		Expect(c.Window).To(Equal(2 * time.Hour))
		Expect(c.RefreshInterval).To(BeZero())
		Expect(c.TokenMaxAge).To(Equal(24 * time.Hour))
		Expect(c.Provider).To(Equal(config.ProviderEero))
		Expect(c.ServiceName).To(Equal("eero-dashboard"))
		Expect(c.LogFormat).To(Equal(config.LogFormatJSON))
	})

	It("derives file paths from the data dir", func() {
		v.Set("data-dir", "/srv/rack")

		c, err := config.Load(v)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.TokenFile).To(Equal("/srv/rack/.eero_token"))
		Expect(c.NetworkConfigFile).To(Equal("/srv/rack/.config.json"))
	})

	It("keeps explicit file paths", func() {
		v.Set("token-file", "/run/secrets/token")

		c, err := config.Load(v)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.TokenFile).To(Equal("/run/secrets/token"))
	})

	It("parses durations given as text", func() {
		v.Set("refresh-interval", "30s")
		v.Set("window", "90m")

		c, err := config.Load(v)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.RefreshInterval).To(Equal(30 * time.Second))
		Expect(c.Window).To(Equal(90 * time.Minute))
	})

	It("reads a yaml file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "minirack.yaml")
		Expect(os.WriteFile(path, []byte("listen: \":9090\"\nprovider: fritzbox\nfritzbox-username: admin\nfritzbox-password: secret\n"), 0o600)).To(Succeed())
		v.SetConfigFile(path)
		Expect(v.ReadInConfig()).To(Succeed())

		c, err := config.Load(v)

		Expect(err).NotTo(HaveOccurred())
		Expect(c.Listen).To(Equal(":9090"))
		Expect(c.Provider).To(Equal(config.ProviderFritzbox))
		Expect(c.FritzboxUsername).To(Equal("admin"))
	})

	DescribeTable("rejects invalid settings",
		func(key string, value any, message string) {
			v.Set(key, value)

			_, err := config.Load(v)

			Expect(err).To(MatchError(config.ErrInvalid))
			Expect(err.Error()).To(ContainSubstring(message))
		},
		Entry("zero fetch timeout", "fetch-timeout", "0s", "fetch-timeout"),
		Entry("negative refresh interval", "refresh-interval", "-1m", "refresh-interval"),
		Entry("zero window", "window", "0s", "window"),
		Entry("unknown provider", "provider", "unifi", `unknown provider "unifi"`),
		Entry("fritzbox without login", "provider", "fritzbox", "fritzbox-username"),
		Entry("empty listen address", "listen", "", "listen"),
		Entry("unknown log format", "log-format", "xml", `unknown log-format "xml"`),
	)
})
