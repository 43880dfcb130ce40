package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-deal-watch/internal/app"
	"github.com/MKhiriev/go-deal-watch/internal/display"
	"github.com/MKhiriev/go-deal-watch/internal/service"
	"github.com/MKhiriev/go-deal-watch/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type dealsModel struct {
	ctx   context.Context
	notes service.NoteService
	deals service.DealsService

	location  string
	snapshot  models.Deals
	rendered  bool
	updatedAt time.Time

	deleting bool
	busy     bool
	input    textinput.Model

	status string
	errMsg string
}

func newDealsModel(ctx context.Context, notes service.NoteService, deals service.DealsService) dealsModel {
	in := textinput.New()
	in.Placeholder = app.MsgEnterNoteID
	in.CharLimit = 128

	return dealsModel{
		ctx:      ctx,
		notes:    notes,
		deals:    deals,
		location: service.RootPath,
		input:    in,
	}
}

func (m dealsModel) withSnapshot(msg dealsRenderedMsg) dealsModel {
	m.snapshot = msg.deals
	m.rendered = true
	m.updatedAt = msg.at
	return m
}

func (m dealsModel) Init() tea.Cmd {
	return nil
}

func (m dealsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dealsRenderedMsg:
		return m.withSnapshot(msg), nil
	case navigatedMsg:
		m.location = msg.target
		m.deleting = false
		m.input.Reset()
		m.input.Blur()
		return m, m.cmdRefresh()
	case deleteDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("%s: %v", app.MsgDeleteFailed, msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgNoteDeleted
		return m, nil
	case refreshDoneMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("%s: %v", app.MsgRefreshFailed, msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, nil
	case tea.KeyMsg:
		if m.deleting {
			return m.updateDeletePrompt(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m dealsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.delete):
		if m.busy {
			return m, nil
		}
		m.deleting = true
		m.status = ""
		m.errMsg = ""
		return m, m.input.Focus()
	}
	return m, nil
}

func (m dealsModel) updateDeletePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.deleting = false
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		id := strings.TrimSpace(m.input.Value())
		if id == "" {
			return m, nil
		}
		m.deleting = false
		m.busy = true
		m.input.Blur()
		return m, m.cmdDelete(models.NewNoteID(id))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dealsModel) cmdDelete(noteID models.NoteID) tea.Cmd {
	ctx, notes := m.ctx, m.notes
	return func() tea.Msg {
		return deleteDoneMsg{err: notes.Delete(ctx, noteID)}
	}
}

func (m dealsModel) cmdRefresh() tea.Cmd {
	ctx, deals := m.ctx, m.deals
	return func() tea.Msg {
		return refreshDoneMsg{err: deals.Refresh(ctx)}
	}
}

func (m dealsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Deals") + "  " + statusStyle.Render(m.location) + "\n\n")

	if m.rendered {
		b.WriteString(display.FormatDeals(m.snapshot))
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render("updated " + m.updatedAt.Format("15:04:05")))
	} else {
		b.WriteString(statusStyle.Render(app.MsgWaitingForDeals))
	}
	b.WriteString("\n")

	if m.deleting {
		b.WriteString("\n" + overlayBoxStyle.Render(app.MsgEnterNoteID+"\n"+m.input.View()) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	help := "r refresh    d delete note    q quit"
	if m.deleting {
		help = "enter delete    esc cancel"
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return appStyle.Render(b.String())
}
