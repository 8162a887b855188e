package web

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mountedWidgets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "calcpad_mounted_widgets",
		Help: "Calculator widgets currently mounted over a WebSocket.",
	})

	keyEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "calcpad_key_events_total",
		Help: "Keyboard events received from mounted widgets.",
	}, []string{"handled"})
)
