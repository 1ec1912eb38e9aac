package cmd

import (
	"minirack-dashboard/internal/cache"
	"minirack-dashboard/internal/config"
	"minirack-dashboard/internal/credentials"
	"minirack-dashboard/internal/eero"
	"minirack-dashboard/internal/fritzbox"
	"minirack-dashboard/internal/logger"
	"minirack-dashboard/internal/metrics"
	"minirack-dashboard/internal/speedtest"
	"minirack-dashboard/internal/version"
)

// app is the wired dashboard shared by the commands.
type app struct {
	cfg        config.Config
	metrics    *metrics.Recorder
	aggregator *cache.Aggregator
	runner     *speedtest.Runner
	close      func()
}

func newApp(cfg config.Config, measurer speedtest.Measurer) *app {
	recorder := metrics.New()
	source, creds, closeSource := newSource(cfg)

	agg := cache.New(cache.Options{
		Source:      source,
		Credentials: creds,
		Observer:    recorder,
		Logger:      logger.WithComponent("cache"),
		Window:      cfg.Window,
		TokenMaxAge: cfg.TokenMaxAge,
	})
	runner := speedtest.NewRunner(speedtest.Options{
		Measurer:  measurer,
		Publisher: agg,
		Observer:  recorder,
		Logger:    logger.WithComponent("speedtest"),
		Timeout:   cfg.SpeedTestTimeout,
	})

	return &app{
		cfg:        cfg,
		metrics:    recorder,
		aggregator: agg,
		runner:     runner,
		close:      closeSource,
	}
}

// newSource builds the configured device source. The credential source is nil for
// routers that log in on their own.
func newSource(cfg config.Config) (cache.Source, cache.CredentialSource, func()) {
	if cfg.Provider == config.ProviderFritzbox {
		client := fritzbox.New(cfg.FritzboxURL, cfg.FritzboxUsername, cfg.FritzboxPassword)
		source := fritzbox.NewSource(client, logger.WithComponent("fritzbox"))
		return source, nil, source.Close
	}

	client := eero.New(eero.Options{
		BaseURL:   cfg.APIBase,
		Timeout:   cfg.FetchTimeout,
		UserAgent: version.UserAgent(),
		Logger:    logger.WithComponent("eero"),
	})
	store := credentials.NewStore(credentials.Options{
		TokenPath:        cfg.TokenFile,
		ConfigPath:       cfg.NetworkConfigFile,
		DefaultNetworkID: cfg.NetworkID,
		Logger:           logger.WithComponent("credentials"),
	})
	return client, store, func() {}
}
