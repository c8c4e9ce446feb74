// Package config provides 12-factor configuration for sfcx.
//
// Configuration is loaded from environment variables with defaults;
// command-line flags override it.
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
//   - SFCX_MAX_DEPTH, SFCX_PAD_LINES, SFCX_ROOT
//   - SFCX_WORKERS, SFCX_CACHE_SIZE
package config
