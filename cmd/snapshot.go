package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/logger"
	"minirack-dashboard/internal/monitor"
	"minirack-dashboard/internal/speedtest"
)

// snapshotCmd performs a single refresh and prints the result.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Refresh once and print the dashboard snapshot",
	Long:  `Fetches the device list once and prints the resulting dashboard snapshot as JSON.`,
	RunE:  runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	a := newApp(cfg, speedtest.NetMeasurer{})
	defer a.close()

	summary, err := monitor.Run(cmd.Context(), monitor.Options{
		Dashboard: a.aggregator,
		Out:       cmd.OutOrStdout(),
	})
	log := logger.WithComponent("snapshot")
	log.Info().
		Bool("refreshed", summary.Refreshed).
		Int("devices", summary.DevicesChecked).
		Dur("duration", summary.Duration).
		Msg("Finished run")
	return err
}
