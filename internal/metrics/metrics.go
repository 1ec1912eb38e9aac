// Package metrics exposes dashboard internals as Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"minirack-dashboard/internal/speedtest"
)

const namespace = "minirack"

// Refresh outcomes.
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

// Recorder owns its registry so several can coexist in tests. A nil *Recorder
// is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	refreshes     *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	connected     prometheus.Gauge
	signalAvg     prometheus.Gauge
	devicesByOS   *prometheus.GaugeVec
	devicesByBand *prometheus.GaugeVec

	speedTests    *prometheus.CounterVec
	speedDownload prometheus.Gauge
	speedUpload   prometheus.Gauge
	speedPing     prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refreshes_total",
				Help:      "Cache refresh attempts by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "device_fetch_duration_seconds",
			Help:      "Duration of upstream device list requests",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		connected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wireless_devices_connected",
			Help:      "Wireless devices connected at the last successful refresh",
		}),
		signalAvg: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "signal_strength_average_dbm",
			Help:      "Average signal strength of wireless devices at the last successful refresh",
		}),
		devicesByOS: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "wireless_devices_by_os",
				Help:      "Wireless devices by operating system category",
			},
			[]string{"os"},
		),
		devicesByBand: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "wireless_devices_by_band",
				Help:      "Wireless devices by frequency band",
			},
			[]string{"band"},
		),
		speedTests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "speedtests_total",
				Help:      "Completed speed tests by outcome",
			},
			[]string{"outcome"},
		),
		speedDownload: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "speedtest_download_mbps",
			Help:      "Download throughput of the last successful speed test",
		}),
		speedUpload: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "speedtest_upload_mbps",
			Help:      "Upload throughput of the last successful speed test",
		}),
		speedPing: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "speedtest_ping_milliseconds",
			Help:      "Latency of the last successful speed test",
		}),
	}

	r.registry.MustRegister(
		r.refreshes,
		r.fetchDuration,
		r.connected,
		r.signalAvg,
		r.devicesByOS,
		r.devicesByBand,
		r.speedTests,
		r.speedDownload,
		r.speedUpload,
		r.speedPing,
	)
	return r
}

// Registry returns the registry holding every dashboard metric.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) ObserveRefresh(outcome string) {
	if r == nil {
		return
	}
	r.refreshes.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveFetch(d time.Duration) {
	if r == nil {
		return
	}
	r.fetchDuration.Observe(d.Seconds())
}

func (r *Recorder) ObserveAggregates(connected int, byOS, byBand map[string]int) {
	if r == nil {
		return
	}
	r.connected.Set(float64(connected))
	for os, n := range byOS {
		r.devicesByOS.WithLabelValues(os).Set(float64(n))
	}
	for band, n := range byBand {
		r.devicesByBand.WithLabelValues(band).Set(float64(n))
	}
}

func (r *Recorder) ObserveSignal(avgDBM float64) {
	if r == nil {
		return
	}
	r.signalAvg.Set(avgDBM)
}

func (r *Recorder) ObserveSpeedTest(result speedtest.Result) {
	if r == nil {
		return
	}
	if result.Failed() {
		r.speedTests.WithLabelValues(OutcomeError).Inc()
		return
	}
	r.speedTests.WithLabelValues(OutcomeOK).Inc()
	r.speedDownload.Set(result.Download)
	r.speedUpload.Set(result.Upload)
	r.speedPing.Set(result.Ping)
}
