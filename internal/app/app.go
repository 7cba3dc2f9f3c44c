// Package app is the root Bubble Tea model: it owns the screen stack and
// routes between the setup and practice flows as the key is set or removed.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/toanvui/internal/credential"
	"github.com/abhisek/toanvui/internal/logging"
	"github.com/abhisek/toanvui/internal/problemgen"
	"github.com/abhisek/toanvui/internal/router"
	"github.com/abhisek/toanvui/internal/screen"
	"github.com/abhisek/toanvui/internal/screens/practice"
	"github.com/abhisek/toanvui/internal/screens/reset"
	"github.com/abhisek/toanvui/internal/screens/setup"
	"github.com/abhisek/toanvui/internal/screens/welcome"
	"github.com/abhisek/toanvui/internal/ui/layout"
)

// Deps are the services the screens run on.
type Deps struct {
	Credentials *credential.Store
	Generator   problemgen.Generator

	// ResetSecret overrides the reset password when non-empty.
	ResetSecret string

	// SkipSplash starts directly on setup or practice.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   Deps
	router *router.Router
	width  int
	height int
}

func newAppModel(deps Deps) AppModel {
	m := AppModel{deps: deps}
	var first screen.Screen
	if deps.SkipSplash {
		first = m.home()
	} else {
		first = welcome.New(m.home)
	}
	m.router = router.New(first)
	return m
}

// home is the screen for the current credential state.
func (m AppModel) home() screen.Screen {
	if m.deps.Credentials.Present(context.Background()) {
		return m.practiceScreen()
	}
	return setup.New(m.deps.Credentials)
}

func (m AppModel) practiceScreen() screen.Screen {
	return practice.New(m.deps.Generator, m.deps.Credentials, func() screen.Screen {
		return reset.New(m.deps.Credentials, m.deps.ResetSecret)
	})
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

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.KeySetMsg:
		return m, m.onKeySet(msg)

	case screen.KeyRemovedMsg:
		return m, m.onKeyRemoved()
	}

	return m, m.router.Update(msg)
}

// onKeySet leaves the setup flow for practice.
func (m AppModel) onKeySet(msg screen.KeySetMsg) tea.Cmd {
	logging.Logger.WithField("key", msg.Credential.Masked()).Info("key set, starting practice")
	return m.router.Update(router.ResetStackMsg{Screen: m.practiceScreen()})
}

// onKeyRemoved drops everything and returns to the setup flow.
func (m AppModel) onKeyRemoved() tea.Cmd {
	logging.Logger.Info("key removed, back to setup")
	return m.router.Update(router.ResetStackMsg{Screen: setup.New(m.deps.Credentials)})
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

// render draws the whole frame for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{{Key: "Ctrl+C", Description: "Thoát"}}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx ends.
func Run(ctx context.Context, deps Deps) error {
	p := tea.NewProgram(newAppModel(deps), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
