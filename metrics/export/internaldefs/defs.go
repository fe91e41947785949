package internaldefs

import (
	pharmaclient "github.com/rxdeskhq/pharmaclient"
)

// CounterDef names one exported counter.
type CounterDef struct {
	ID   pharmaclient.MetricID
	Name string
	Help string
}

// HistogramDef names one exported histogram.
type HistogramDef struct {
	ID   pharmaclient.MetricID
	Name string
	Help string
}

// CounterDefs maps every client counter onto a stable exported name.
var CounterDefs = []CounterDef{
	{ID: pharmaclient.MetricRequestSuccess, Name: "pharmaclient_request_success_total", Help: "Requests answered 2xx."},
	{ID: pharmaclient.MetricRequestFailure, Name: "pharmaclient_request_failure_total", Help: "Requests answered non-2xx, excluding 401."},
	{ID: pharmaclient.MetricRequestUnauthorized, Name: "pharmaclient_request_unauthorized_total", Help: "Requests answered 401."},
	{ID: pharmaclient.MetricRequestCanceled, Name: "pharmaclient_request_canceled_total", Help: "Requests abandoned by context cancellation."},
	{ID: pharmaclient.MetricRefreshSuccess, Name: "pharmaclient_refresh_success_total", Help: "Accepted token refreshes."},
	{ID: pharmaclient.MetricRefreshFailure, Name: "pharmaclient_refresh_failure_total", Help: "Rejected or failed token refreshes."},
	{ID: pharmaclient.MetricRefreshDeduplicated, Name: "pharmaclient_refresh_deduplicated_total", Help: "Refresh attempts that joined an in-flight refresh."},
	{ID: pharmaclient.MetricLoginSuccess, Name: "pharmaclient_login_success_total", Help: "Successful logins."},
	{ID: pharmaclient.MetricLoginFailure, Name: "pharmaclient_login_failure_total", Help: "Failed logins."},
	{ID: pharmaclient.MetricLogout, Name: "pharmaclient_logout_total", Help: "Logout operations."},
	{ID: pharmaclient.MetricSessionExpired, Name: "pharmaclient_session_expired_total", Help: "Sessions cleared after a rejected refresh."},
}

// HistogramDefs maps every client histogram onto a stable exported name.
var HistogramDefs = []HistogramDef{
	{ID: pharmaclient.MetricRequestLatency, Name: "pharmaclient_request_latency_seconds", Help: "Request latency histogram."},
}

// HistogramBounds are the bucket upper bounds in seconds.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix are instrument-name-safe spellings of the bounds.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed
// bucket count.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form
// the Prometheus exposition format requires.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
