package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Connected - whether the IRC connection is currently up.
	Connected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_connected",
		Help: "Whether the bot is connected to the IRC server (1) or not (0)",
	})

	// AuthenticatedAdmins - size of the session registry.
	AuthenticatedAdmins = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bot_authenticated_admins",
		Help: "Current number of authenticated admin nicks",
	})

	// MessagesTotal - inbound PRIVMSGs addressed to the bot.
	MessagesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_messages_total",
		Help: "Total number of private messages addressed to the bot",
	})

	// AdminCommands - dispatched remote-control commands per keyword.
	AdminCommands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_admin_commands_total",
			Help: "Total number of admin commands dispatched per command",
		},
		[]string{"command"},
	)

	// AuthAttempts - login attempts by outcome (success, invalid, throttled).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_auth_attempts_total",
			Help: "Total number of login attempts per outcome",
		},
		[]string{"outcome"},
	)

	// ActionsOut - outbound protocol actions per type.
	ActionsOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_actions_out_total",
			Help: "Total number of outbound actions per action type",
		},
		[]string{"type"},
	)

	// MessageProcessingTime - per-event processing latency.
	MessageProcessingTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bot_message_processing_milliseconds",
			Help:    "Average time to process a message",
			Buckets: prometheus.ExponentialBuckets(0.00005, 1.5, 25),
		},
	)
)
