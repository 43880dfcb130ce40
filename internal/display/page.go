package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-deal-watch/internal/logger"
)

// PageLoader fetches a page of the web application.
type PageLoader interface {
	LoadPage(ctx context.Context, path string) error
}

// Page tracks the current location of the client and performs full page
// loads on navigation.
type Page struct {
	loader PageLoader
	logger *logger.Logger

	mu       sync.RWMutex
	location string
}

// NewPage returns a Page whose initial location is "/".
func NewPage(loader PageLoader, logger *logger.Logger) *Page {
	return &Page{loader: loader, logger: logger, location: "/"}
}

// Navigate implements the service Navigator contract. The location changes
// to target before the page is loaded, so a failed load still leaves the
// client pointed at target.
func (p *Page) Navigate(ctx context.Context, target string) error {
	p.mu.Lock()
	p.location = target
	p.mu.Unlock()

	if err := p.loader.LoadPage(ctx, target); err != nil {
		return fmt.Errorf("load %s: %w", target, err)
	}

	p.logger.Info().Str("location", target).Msg("navigated")
	return nil
}

// Location returns the current location.
func (p *Page) Location() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.location
}
