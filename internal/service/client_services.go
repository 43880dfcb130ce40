package service

import (
	"github.com/MKhiriev/go-deal-watch/internal/adapter"
	"github.com/MKhiriev/go-deal-watch/internal/config"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/benbjohnson/clock"
)

// ClientServices bundles the client-side services wired to one display.
type ClientServices struct {
	NoteService    NoteService
	DealsService   DealsService
	DealsRefresher DealsRefresher
}

// NewClientServices wires the services to serverAdapter. renderer is the
// deals container of the active display and navigator its page.
func NewClientServices(
	serverAdapter adapter.ServerAdapter,
	renderer Renderer,
	navigator Navigator,
	workersCfg config.ClientWorkers,
	log *logger.Logger,
) *ClientServices {
	dealsSvc := NewDealsService(serverAdapter, renderer, log)

	return &ClientServices{
		NoteService:    NewNoteService(serverAdapter, navigator, log),
		DealsService:   dealsSvc,
		DealsRefresher: NewDealsRefresher(dealsSvc, workersCfg.DealsPollInterval, clock.New(), log),
	}
}
