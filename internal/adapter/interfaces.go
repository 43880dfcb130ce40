// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the deals web
// application.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-deal-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the deals web application.
// Implementations never retry; every call maps to exactly one request.
type ServerAdapter interface {
	// DeleteNote sends POST /delete-note with body {"noteId": <id>}. The
	// response body is ignored; a non-2xx status or a transport failure is
	// returned as an error.
	DeleteNote(ctx context.Context, noteID models.NoteID) error

	// GetDeals sends GET /get-deals and returns the decoded JSON body
	// without interpreting it. Returns an error wrapping
	// [ErrMalformedDeals] when the body is not valid JSON.
	GetDeals(ctx context.Context) (models.Deals, error)

	// LoadPage performs a full page load of path (e.g. "/") and discards the
	// document. Redirects are followed.
	LoadPage(ctx context.Context, path string) error
}
