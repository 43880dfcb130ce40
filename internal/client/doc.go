// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dealwatch client application runtime.
//
// It wires the server adapter, client services, background refresher and
// the selected display (terminal UI, headless stdout, or one-shot delete)
// into a single process lifecycle.
package client
