// Copyright (c) 2026 StoreRatings. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts and cross-cutting keys that are shared between
different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Security: JWT issuer and header names.
  - Redis: cache key taxonomy.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "storeratings-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "storeratings"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldStatus  = "status"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixAggregate keys the per-store rating aggregate cache.
	// Entries are deleted inside the rating submit path, never left to
	// drift from the underlying rating rows.
	RedisPrefixAggregate = "rating:aggregate:"

	// RedisPrefixAggregateEpoch keys the per-store invalidation counter.
	// Every invalidation bumps it; a cache fill carrying an older epoch
	// is refused, so a slow reader cannot resurrect a pre-write value.
	RedisPrefixAggregateEpoch = "rating:aggregate:epoch:"
)

// # Cache Timing

const (
	// AggregateCacheTTL is a backstop only; correctness comes from the
	// explicit invalidation on every rating write.
	AggregateCacheTTL = 10 * time.Minute

	// AggregateEpochTTL bounds the lifetime of idle epoch counters. An
	// expired epoch reads as zero, which refuses in-flight fills rather
	// than accepting them.
	AggregateEpochTTL = time.Hour
)
