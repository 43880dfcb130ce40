package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-deal-watch/internal/adapter"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
)

type dealsService struct {
	serverAdapter adapter.ServerAdapter
	renderer      Renderer

	logger *logger.Logger
}

// NewDealsService returns a DealsService that fetches deals through
// serverAdapter and draws them with renderer.
func NewDealsService(serverAdapter adapter.ServerAdapter, renderer Renderer, logger *logger.Logger) DealsService {
	return &dealsService{serverAdapter: serverAdapter, renderer: renderer, logger: logger}
}

// Refresh implements DealsService.
func (s *dealsService) Refresh(ctx context.Context) error {
	deals, err := s.serverAdapter.GetDeals(ctx)
	if err != nil {
		return fmt.Errorf("get deals: %w", err)
	}

	if err = s.renderer.Render(ctx, deals); err != nil {
		return fmt.Errorf("render deals: %w", err)
	}

	s.logger.Debug().Msg("deals rendered")
	return nil
}
