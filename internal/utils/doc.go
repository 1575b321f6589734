// Package utils provides general-purpose helper utilities used across the
// client: the resty HTTP client wrapper, atomic file writes, cache key
// hashing, session id generation and unverified JWT inspection.
package utils
