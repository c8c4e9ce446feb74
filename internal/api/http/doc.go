// Package http exposes the transform over HTTP for build tools that run
// outside the Go process.
//
// Endpoints:
//   - POST /v1/transform: resolve one component
//   - GET /health: liveness
//
// Error replies carry a stable kind such as missing_base or
// malformed_source next to the message.
package http
