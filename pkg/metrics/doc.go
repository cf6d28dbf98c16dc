// Package metrics exposes Prometheus counters for the notification endpoint.
//
// All counters live under the hostcities_notify_ prefix:
//
//	requests_total{type,status}
//	emails_total{kind,outcome}
//	store_writes_total{outcome}
//	rate_limited_total
//
// Every method is safe on a nil *Metrics, so collaborators can take metrics
// as an optional dependency.
package metrics
