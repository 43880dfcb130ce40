// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied before any other configuration source.
const (
	// DefaultHTTPAddress is the address of the deals web application.
	DefaultHTTPAddress = "http://localhost:5000"
	// DefaultDealsPollInterval is the period of the deals refresher.
	DefaultDealsPollInterval = 300000 * time.Millisecond
)

// StructuredConfig is the top-level configuration container for the
// dealwatch client. It aggregates all sub-configurations and is populated by
// merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings that choose how the client runs.
	App App `envPrefix:"APP_"`

	// Adapter holds the address and timeout of the deals web application.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level run settings.
type App struct {
	// Headless disables the terminal UI; deals snapshots are printed to
	// stdout instead.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`

	// DeleteNoteID, when set, makes the client delete this note, navigate to
	// the site root and exit. Only settable with the -delete-note flag.
	DeleteNoteID string
}

// Adapter holds configuration of the outbound HTTP adapter.
type Adapter struct {
	// HTTPAddress is the base URL of the web application
	// (e.g. "http://localhost:5000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Zero means no timeout.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// DealsPollInterval is the period between two GET /get-deals polls.
	// Env: WORKERS_DEALS_POLL_INTERVAL
	DealsPollInterval time.Duration `env:"DEALS_POLL_INTERVAL"`
}

// defaultConfig returns the lowest priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{HTTPAddress: DefaultHTTPAddress},
		Workers: Workers{DealsPollInterval: DefaultDealsPollInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
