package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-deal-watch/internal/adapter"
	"github.com/MKhiriev/go-deal-watch/internal/app"
	"github.com/MKhiriev/go-deal-watch/internal/config"
	"github.com/MKhiriev/go-deal-watch/internal/display"
	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/MKhiriev/go-deal-watch/internal/service"
	"github.com/MKhiriev/go-deal-watch/internal/tui"
	"github.com/MKhiriev/go-deal-watch/internal/workers"
	"github.com/MKhiriev/go-deal-watch/models"
)

type App struct {
	adapter adapter.ServerAdapter
	cfg     *config.ClientConfig
	out     io.Writer
	logger  *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNilAdapter
	}
	return &App{adapter: serverAdapter, cfg: cfg, out: os.Stdout, logger: log}, nil
}

// Run selects the run mode from the config: one-shot delete when a note id
// is given, headless output, or the terminal UI.
func (a *App) Run(ctx context.Context) error {
	switch {
	case a.cfg.App.DeleteNoteID != "":
		return a.runDelete(ctx, models.NewNoteID(a.cfg.App.DeleteNoteID))
	case a.cfg.App.Headless:
		return a.runHeadless(ctx)
	default:
		return a.runTUI(ctx)
	}
}

func (a *App) runDelete(ctx context.Context, noteID models.NoteID) error {
	page := display.NewPage(a.adapter, a.logger)
	svcs := service.NewClientServices(a.adapter, display.NewWriterContainer(a.out, nil), page, a.cfg.Workers, a.logger)

	if err := svcs.NoteService.Delete(ctx, noteID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s, location: %s\n", app.MsgNoteDeleted, page.Location())
	return nil
}

func (a *App) runHeadless(ctx context.Context) error {
	page := display.NewPage(a.adapter, a.logger)
	svcs := service.NewClientServices(a.adapter, display.NewWriterContainer(a.out, nil), page, a.cfg.Workers, a.logger)

	fmt.Fprintln(a.out, app.MsgWaitingForDeals)

	jobs := workers.New(svcs.DealsRefresher)
	jobs.Start(ctx)
	defer jobs.Stop()

	a.logger.Info().
		Str("address", a.cfg.Adapter.HTTPAddress).
		Dur("interval", a.cfg.Workers.DealsPollInterval).
		Msg("headless deals refresher started")

	<-ctx.Done()
	return nil
}

func (a *App) runTUI(ctx context.Context) error {
	ui := tui.New(a.logger)
	svcs := service.NewClientServices(a.adapter, ui, ui, a.cfg.Workers, a.logger)

	jobs := workers.New(svcs.DealsRefresher)
	jobs.Start(ctx)
	defer jobs.Stop()

	if err := ui.Run(ctx, svcs.NoteService, svcs.DealsService); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
