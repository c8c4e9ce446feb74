// Package monitoring provides Prometheus metrics for the transform service.
//
// Collected:
//   - sfcx_http_requests_total, sfcx_http_request_duration_seconds
//   - sfcx_transforms_total{status,kind}
//   - sfcx_transform_duration_seconds
//   - sfcx_extends_chain_depth
//
// Example Usage:
//
//	metrics := monitoring.NewMetrics()
//	router.Use(monitoring.Middleware(metrics))
//	router.GET("/metrics", gin.WrapH(metrics.Handler()))
package monitoring
