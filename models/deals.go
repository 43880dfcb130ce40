// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Deals is the parsed body of GET /get-deals.
//
// The shape is owned by the server: a decoded value is one of []any,
// map[string]any, string, float64, bool or nil. Client code passes it to a
// renderer unchanged and never relies on its structure.
type Deals = any
