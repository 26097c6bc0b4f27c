package mcp

import "github.com/prometheus/client_golang/prometheus"

var (
	toolInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "syncro_mcp_tool_invocations_total",
			Help: "Total tool invocations by tool name and outcome.",
		},
		[]string{"tool", "outcome"},
	)
	toolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "syncro_mcp_tool_duration_seconds",
			Help: "Duration of tool invocations.",
		},
		[]string{"tool"},
	)
)

func init() {
	prometheus.MustRegister(toolInvocations, toolDuration)
}
