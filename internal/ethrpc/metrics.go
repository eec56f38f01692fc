package ethrpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK          = "ok"
	resultRejected    = "rejected"
	resultUnreachable = "unreachable"
)

var metricCalls = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "vena",
		Subsystem: "ethrpc",
		Name:      "calls_total",
		Help:      "Remote eth_call invocations by result.",
	},
	[]string{"result"},
)
