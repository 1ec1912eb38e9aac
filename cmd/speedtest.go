package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/speedtest"
)

var speedtestCmd = &cobra.Command{
	Use:   "speedtest",
	Short: "Run one internet speed test and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		return runSpeedTest(cmd, cfg, speedtest.NetMeasurer{})
	},
}

func init() {
	rootCmd.AddCommand(speedtestCmd)
}

func runSpeedTest(cmd *cobra.Command, cfg config.Config, measurer speedtest.Measurer) error {
	a := newApp(cfg, measurer)
	defer a.close()

	if _, err := a.runner.Start(); err != nil {
		return err
	}
	if err := a.runner.Wait(cmd.Context()); err != nil {
		return err
	}

	_, result := a.runner.Status()
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return err
	}
	if result != nil && result.Failed() {
		return errors.New(result.Error)
	}
	return nil
}
