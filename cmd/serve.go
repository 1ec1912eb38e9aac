package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/logger"
	"minirack-dashboard/internal/server"
	"minirack-dashboard/internal/speedtest"
	"minirack-dashboard/internal/system"
)

// serveCmd runs the dashboard API and, optionally, the UI.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard API and UI",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "Address the web server listens on")
	serveCmd.Flags().Duration("refresh-interval", 0, "Background refresh interval, 0 refreshes only on request")
	serveCmd.Flags().String("service-name", "eero-dashboard", "systemd unit restarted by the restart action")
	serveCmd.Flags().String("static-dir", "", "Directory with the dashboard UI served at /")

	_ = viper.BindPFlag("listen", serveCmd.Flags().Lookup("listen"))
	_ = viper.BindPFlag("refresh-interval", serveCmd.Flags().Lookup("refresh-interval"))
	_ = viper.BindPFlag("service-name", serveCmd.Flags().Lookup("service-name"))
	_ = viper.BindPFlag("static-dir", serveCmd.Flags().Lookup("static-dir"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, speedtest.NetMeasurer{})
	defer a.close()

	log := logger.WithComponent("serve")
	log.Info().Str("provider", cfg.Provider).Str("listen", cfg.Listen).Msg("Starting dashboard")

	start := time.Now()
	if a.aggregator.Refresh(ctx) {
		log.Info().Dur("duration", time.Since(start)).Msg("Initial refresh complete")
	} else {
		log.Warn().Msg("Initial refresh returned no data")
	}
	go a.aggregator.Poll(ctx, cfg.RefreshInterval)

	srv := server.New(server.Options{
		Addr:      cfg.Listen,
		Dashboard: a.aggregator,
		SpeedTest: a.runner,
		System:    system.NewController(cfg.ServiceName, system.ExecCommander{}, logger.WithComponent("system")),
		Metrics:   a.metrics.Handler(),
		StaticDir: cfg.StaticDir,
		Logger:    logger.WithComponent("server"),
	})
	if err := srv.Run(ctx); err != nil {
		return err
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = a.runner.Wait(waitCtx)
	log.Info().Msg("Dashboard stopped")
	return nil
}
