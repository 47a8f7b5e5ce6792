package metrics

import "github.com/prometheus/client_golang/prometheus"

// Requests served, partitioned by method and response status
var HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of HTTP requests served",
}, []string{"method", "status"})
