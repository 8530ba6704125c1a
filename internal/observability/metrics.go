package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business counters exposed on /metrics alongside the default Go collectors.
var (
	Registrations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventsight_registrations_total",
		Help: "Number of user registrations.",
	})

	PromoRedemptions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventsight_promo_redemptions_total",
		Help: "Number of successful promo code redemptions.",
	})

	PaywallBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventsight_paywall_blocks_total",
		Help: "Number of requests rejected by the subscription paywall.",
	})

	MetricRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventsight_metric_refreshes_total",
		Help: "Number of user-initiated SKU metric recalculations.",
	})
)
