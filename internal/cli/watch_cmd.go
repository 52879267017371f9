package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newWatchCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Live status view, updated every second",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := newWatchModel(app, resolveDate(date))
			p := tea.NewProgram(m, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	addDateFlag(cmd, &date)
	return cmd
}

// ── messages ─────────────────────────────────────────────────────────────────

type watchTickMsg time.Time

type watchReportMsg struct {
	report *domain.TimeReport
	err    error
}

// ── model ────────────────────────────────────────────────────────────────────

// watchKeyMap defines the key bindings for the watch view.
type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

var watchKeys = watchKeyMap{
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// watchModel is a read-only live dashboard. It never mutates the session;
// every second it reloads the report and re-renders.
type watchModel struct {
	app  *App
	date string

	report *domain.TimeReport
	err    error

	help help.Model
	keys watchKeyMap
}

func newWatchModel(app *App, date string) watchModel {
	return watchModel{
		app:  app,
		date: date,
		help: help.New(),
		keys: watchKeys,
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.loadReport(), watchTick())
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}

func (m watchModel) loadReport() tea.Cmd {
	return func() tea.Msg {
		report, err := m.app.Worklog.Status(context.Background(), m.date)
		return watchReportMsg{report: report, err: err}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadReport()
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.loadReport(), watchTick())

	case watchReportMsg:
		m.report = msg.report
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

func (m watchModel) View() string {
	var body string
	switch {
	case m.err != nil:
		body = formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err))
	case m.report == nil:
		body = formatter.Dim("Loading…")
	default:
		body = formatter.FormatStatus(m.report)
	}

	return body + "\n" + m.help.View(m.keys) + "\n"
}
