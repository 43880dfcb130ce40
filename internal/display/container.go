package display

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/lipgloss"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// WriterContainer is a deals container that writes every rendered snapshot
// to an io.Writer. Each Render replaces the previous snapshot by appending a
// new block; the last block written is the current display.
type WriterContainer struct {
	mu    sync.Mutex
	out   io.Writer
	clock clock.Clock
}

// NewWriterContainer returns a container writing to out. A nil clk uses the
// wall clock for the "updated" timestamp.
func NewWriterContainer(out io.Writer, clk clock.Clock) *WriterContainer {
	if clk == nil {
		clk = clock.New()
	}
	return &WriterContainer{out: out, clock: clk}
}

// Render implements the service Renderer contract.
func (c *WriterContainer) Render(_ context.Context, deals models.Deals) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	header := headerStyle.Render(fmt.Sprintf("Deals, updated %s", c.clock.Now().Format("15:04:05")))
	if n := CountDeals(deals); n >= 0 {
		header += fmt.Sprintf(" (%d)", n)
	}

	if _, err := fmt.Fprintf(c.out, "%s\n%s\n\n", header, FormatDeals(deals)); err != nil {
		return fmt.Errorf("write deals: %w", err)
	}
	return nil
}
