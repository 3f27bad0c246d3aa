package loader

import "github.com/prometheus/client_golang/prometheus"

const (
	rendersTotalMetric = "chart_renders_total"

	outcomeRendered = "rendered"
	outcomeFailed   = "failed"
)

func init() {
	prometheus.MustRegister(rendersTotal)
}

// rendersTotal counts render attempts.
// Labels:
//   - surface: rendering surface id
//   - outcome: "rendered" or "failed"
//   - stage: failed stage, empty when rendered
var rendersTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: "dashboard",
		Name:      rendersTotalMetric,
		Help:      "Total number of chart render attempts by surface and outcome",
	},
	[]string{"surface", "outcome", "stage"},
)
