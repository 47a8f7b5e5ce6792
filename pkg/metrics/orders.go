package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout handler
	CheckoutLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_latency_seconds",
		Help:    "Latency of order creation requests",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of orders created
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	// Checkout failures partitioned by reason
	CheckoutFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_failures_total",
		Help: "Total number of failed checkout requests",
	}, []string{"reason"})
)

func Init() {
	prometheus.MustRegister(
		CheckoutLatency,
		OrdersCreated,
		CheckoutFailures,
		HTTPRequests,
	)
}
