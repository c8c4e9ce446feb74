// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON lines on stderr
//   - Development: colored console output
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.ForFile("src/Page.vue").Error("transform failed", zap.Error(err))
package logging
