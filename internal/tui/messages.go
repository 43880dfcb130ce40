package tui

import (
	"time"

	"github.com/MKhiriev/go-deal-watch/models"
)

// dealsRenderedMsg replaces the deals region with a new snapshot.
type dealsRenderedMsg struct {
	deals models.Deals
	at    time.Time
}

// navigatedMsg moves the view to target.
type navigatedMsg struct {
	target string
}

type deleteDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}
