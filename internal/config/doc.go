// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. JSON config file
//  2. Environment variables
//  3. Command-line flags
//
// Unset fields are then filled from built-in defaults and the result is
// validated. The process must not start when validation fails: a missing
// token signing key, database DSN or provider API key is fatal.
package config
