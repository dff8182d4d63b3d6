// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package constants holds the fixed values shared by both binaries. Anything
// an operator may want to tune lives in config instead.
package constants

import "time"

const (
	AppName    = "mangaread"
	AppVersion = "0.1.0-dev"
)

// # HTTP Server

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout caps a request end to end. The postgres
	// statement_timeout uses the same budget.
	GlobalRequestTimeout = 30 * time.Second
)

// # Process Lifecycle

const (
	// StartupTimeout bounds the catalogue load and backend connections at boot.
	StartupTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get after SIGTERM.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiter Housekeeping

const (
	RateLimitCleanupInterval = time.Minute
	RateLimitClientTTL       = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)
