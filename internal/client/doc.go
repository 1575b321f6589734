// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime that ties the client services to the
// host lifecycle.
//
// [Monitor] reacts to startup, shutdown, settings and playback events by
// starting and stopping the cache prune job, the wallet status job, the
// delayed wallet auto-connect and the license verifier.
package client
