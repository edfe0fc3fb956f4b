// Package app wires the dashboard screens into a Bubble Tea program.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/insights"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/journal"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/roster"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/router"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screen"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/overview"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/screens/welcome"
	"github.com/GaoLAQ/make-intelligence-education-dashboard/internal/ui/layout"
)

// Options holds the dependencies the dashboard needs. Insights may be nil,
// in which case AI actions are disabled.
type Options struct {
	Repo     *roster.Repository
	Journal  *journal.Log
	Insights *insights.Service

	// Splash shows the welcome banner before the overview.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	env := &screen.Env{
		Repo:     opts.Repo,
		Journal:  opts.Journal,
		Insights: opts.Insights,
		Filter:   &screen.Filter{},
	}
	var root screen.Screen = overview.New(env)
	if opts.Splash {
		root = welcome.New(env, func() screen.Screen { return overview.New(env) })
	}
	return AppModel{
		env:    env,
		router: router.New(root),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, overview.HeaderStats(m.env), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(p.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
