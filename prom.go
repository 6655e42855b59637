package thermograph

import (
	"github.com/chronobio/thermograph/schema"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	rowsImported = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "thermograph_rows_imported_total",
		Help: "Raw CSV rows ingested across all imports.",
	})

	importDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: "thermograph_import_duration_seconds",
		Help: "Time to parse and persist one CSV import.",
	})

	windowsComputed = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "thermograph_windows_computed",
		Help: "Windows in the most recently published series, per cohort.",
	}, []string{"cohort"})

	lastAvgTemp = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "thermograph_last_avg_temp_celsius",
		Help: "Average temperature of the final window, per cohort.",
	}, []string{"cohort"})

	wsClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "thermograph_websocket_clients",
		Help: "Currently connected websocket clients.",
	})
)

func init() {
	prometheus.MustRegister(
		rowsImported,
		importDuration,
		windowsComputed,
		lastAvgTemp,
		wsClients,
	)
}

func (c *Chart) publishPrometheusMetrics() {
	msgCh := c.broker.Subscribe()
	defer c.broker.Unsubscribe(msgCh)

	for message := range msgCh {
		switch m := message.(type) {
		case schema.WindowSeries:
			windowsComputed.WithLabelValues(m.SeriesName).Set(float64(len(m.Windows)))

			if len(m.Windows) == 0 {
				continue
			}
			lastPoint := m.Windows[len(m.Windows)-1]
			lastAvgTemp.WithLabelValues(m.SeriesName).Set(lastPoint.AvgTemp)
		}
	}
}
