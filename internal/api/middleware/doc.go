// Package middleware provides the Gin middleware of the transform API:
// CORS, per-IP rate limiting and request ids.
package middleware
