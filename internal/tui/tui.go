// Package tui is the interactive display of the client. Its deals view is
// the render container of the deals refresher and its root screen is the
// navigation target after a note has been deleted.
package tui

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-deal-watch/internal/logger"
	"github.com/MKhiriev/go-deal-watch/internal/service"
	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	clock  clock.Clock
	logger *logger.Logger

	mu      sync.Mutex
	program *tea.Program
	pending *dealsRenderedMsg
}

// New returns a TUI that is not running yet. It can already be used as a
// renderer: snapshots rendered before Run are shown when the program starts.
func New(log *logger.Logger) *TUI {
	return &TUI{clock: clock.New(), logger: log}
}

// Render implements service.Renderer.
func (t *TUI) Render(_ context.Context, deals models.Deals) error {
	msg := dealsRenderedMsg{deals: deals, at: t.clock.Now()}

	t.mu.Lock()
	p := t.program
	if p == nil {
		t.pending = &msg
	}
	t.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
	return nil
}

// Navigate implements service.Navigator. Navigating resets the view to the
// target screen and reloads its deals.
func (t *TUI) Navigate(_ context.Context, target string) error {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		p.Send(navigatedMsg{target: target})
	}
	t.logger.Info().Str("location", target).Msg("navigated")
	return nil
}

// Run shows the deals view until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context, notes service.NoteService, deals service.DealsService) error {
	model := newDealsModel(ctx, notes, deals)

	t.mu.Lock()
	if t.pending != nil {
		model = model.withSnapshot(*t.pending)
		t.pending = nil
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	t.program = p
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
