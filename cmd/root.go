package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:          "minirack-dashboard",
	Short:        "Home network dashboard for a MiniRack appliance",
	Long:         `Polls the home router for connected devices, keeps two hours of history and serves it to the dashboard UI.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging()
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogging() error {
	format := viper.GetString("log-format")
	if err := config.ValidateLogFormat(format); err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalid, err)
	}
	return logger.Init(logger.Config{
		Level:  viper.GetString("log-level"),
		Output: "stderr",
		Pretty: format == config.LogFormatText,
	})
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", config.LogFormatJSON, "Log format: json or text")
	rootCmd.PersistentFlags().String("data-dir", "/opt/minirack", "Directory holding the token and network config files")
	rootCmd.PersistentFlags().String("token-file", "", "API token file (default <data-dir>/.eero_token)")
	rootCmd.PersistentFlags().String("network-config-file", "", "Network config JSON (default <data-dir>/.config.json)")
	rootCmd.PersistentFlags().String("network-id", "", "Network id used when the config file has none")
	rootCmd.PersistentFlags().String("api-base", "https://api-user.e2ro.com/2.2", "eero API base URL")
	rootCmd.PersistentFlags().Duration("fetch-timeout", config.DefaultFetchTimeout, "Timeout of one device list request")
	rootCmd.PersistentFlags().Duration("window", config.DefaultWindow, "History kept for the time series")
	rootCmd.PersistentFlags().Duration("token-max-age", config.DefaultTokenMaxAge, "Token age after which it is reported as expired")
	rootCmd.PersistentFlags().Duration("speedtest-timeout", config.DefaultSpeedTestTimeout, "Upper bound of one speed test")
	rootCmd.PersistentFlags().String("provider", config.ProviderEero, "Device source: eero or fritzbox")
	rootCmd.PersistentFlags().String("fritzbox-url", "", "Fritz!Box address")
	rootCmd.PersistentFlags().String("fritzbox-username", "", "Fritz!Box username")
	rootCmd.PersistentFlags().String("fritzbox-password", "", "Fritz!Box password")

	for _, name := range []string{
		"log-level", "log-format", "data-dir", "token-file", "network-config-file", "network-id", "api-base",
		"fetch-timeout", "window", "token-max-age", "speedtest-timeout", "provider",
		"fritzbox-url", "fritzbox-username", "fritzbox-password",
	} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	_ = viper.BindEnv("fritzbox-username", "MINIRACK_FRITZBOX_USERNAME", "FRITZBOX_USERNAME")
	_ = viper.BindEnv("fritzbox-password", "MINIRACK_FRITZBOX_PASSWORD", "FRITZBOX_PASSWORD")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("MINIRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return
		}
		fmt.Fprintln(os.Stderr, "Failed to read config file:", err)
		os.Exit(1)
	}
}
