// Package server assembles the Gin router of `sfcx serve`: request ids,
// metrics, CORS and rate limiting in front of the transform API, plus a
// Prometheus /metrics endpoint.
package server
