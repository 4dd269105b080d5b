// Package config provides 12-factor configuration management for the
// recipe parsing service.
//
// Configuration is loaded from environment variables with sensible
// defaults. CLI flags can override environment variables for development
// flexibility.
//
// Configuration Sections:
//   - Server: HTTP server settings (port, host)
//   - Logging: log level and output format
//   - RateLimit: per-IP rate limiting configuration
//
// Environment Variables:
//   - PORT, HOST
//   - LOG_LEVEL, LOG_DEV
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
