package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/seeksim/seeksim/scheduler"
)

var (
	// Prometheus metrics, labeled by scheduling algorithm where relevant
	promMetrics = struct {
		totalSeekTime   *prometheus.GaugeVec
		averageSeekTime *prometheus.GaugeVec
		throughput      *prometheus.GaugeVec
		requestCount    prometheus.Gauge
		runsTotal       prometheus.Counter
	}{
		totalSeekTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seeksim_total_seek_time",
			Help: "Total head movement in cylinders for the last run",
		}, []string{"algorithm"}),
		averageSeekTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seeksim_average_seek_time",
			Help: "Average head movement per request for the last run",
		}, []string{"algorithm"}),
		throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "seeksim_throughput",
			Help: "Requests serviced per cylinder of head movement for the last run (0 = cost-free run)",
		}, []string{"algorithm"}),
		requestCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seeksim_request_count",
			Help: "Number of pending requests in the last scheduled scenario",
		}),
		runsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seeksim_runs_total",
			Help: "Number of scheduling runs served",
		}),
	}
)

func initPrometheusMetrics() {
	prometheus.MustRegister(
		promMetrics.totalSeekTime,
		promMetrics.averageSeekTime,
		promMetrics.throughput,
		promMetrics.requestCount,
		promMetrics.runsTotal,
	)
}

func updatePrometheusMetrics(cfg scheduler.RunConfig, comparison scheduler.ComparisonResult) {
	promMetrics.requestCount.Set(float64(len(cfg.Requests)))
	promMetrics.runsTotal.Inc()

	for name, result := range comparison {
		promMetrics.totalSeekTime.WithLabelValues(name).Set(float64(result.SeekCost))
		if result.Metrics != nil {
			promMetrics.averageSeekTime.WithLabelValues(name).Set(result.Metrics.AverageSeekTime)
			promMetrics.throughput.WithLabelValues(name).Set(result.Metrics.Throughput)
		}
	}
}
