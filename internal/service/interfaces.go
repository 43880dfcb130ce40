package service

import (
	"context"

	"github.com/MKhiriev/go-deal-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RootPath is the navigation target after a note has been deleted.
const RootPath = "/"

// Renderer replaces the content of the display container it was built for
// with a deals snapshot. The container is bound at construction time.
type Renderer interface {
	// Render receives the parsed /get-deals body unchanged.
	Render(ctx context.Context, deals models.Deals) error
}

// Navigator moves the client to another page.
type Navigator interface {
	// Navigate performs a full navigation to target (e.g. "/").
	Navigate(ctx context.Context, target string) error
}

// NoteService defines the client-side contract for note actions.
type NoteService interface {
	// Delete asks the server to delete noteID and, once the request has
	// completed successfully, navigates to [RootPath]. When the request fails
	// no navigation happens and the error is returned. Never retries.
	Delete(ctx context.Context, noteID models.NoteID) error
}

// DealsService defines the client-side contract for the deals display.
type DealsService interface {
	// Refresh fetches the current deals once and hands the parsed value to
	// the renderer. On any failure the renderer is not called and the
	// previous snapshot stays on display.
	Refresh(ctx context.Context) error
}

// DealsRefresher runs DealsService.Refresh on a fixed period.
type DealsRefresher interface {
	// Start launches the background job. The first refresh happens one
	// interval after Start. Calling Start on a running job restarts it.
	Start(ctx context.Context)

	// Stop cancels the job and waits for the ticker goroutine and every
	// in-flight refresh to return. Safe to call when the job is not running.
	Stop()
}
