package lifecycle_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PackagesByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "packages_by_status",
			Help: "Current number of packages per lifecycle status",
		},
		[]string{"status"},
	)

	ActiveDeliveries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "deliveries_active",
			Help: "Current number of active delivery claims",
		},
	)
)
