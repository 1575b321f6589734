// Package config provides configuration loading, merging, and validation
// for the license keeper client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (prefixed with LK_)
//  2. Command-line flags
//  3. JSON config file
//
// Missing values are filled from [Defaults] and interval settings are clamped
// to sane minimums before the [ClientConfig] view is returned by
// [GetClientConfig].
package config
