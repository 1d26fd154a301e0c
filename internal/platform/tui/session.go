package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

type sessionState int

const (
	stateMenu sessionState = iota
	stateViewer
	stateBookmarks
)

// SessionModel manages the full viewer session flow:
// menu -> viewer <-> bookmarks, and back to the menu.
// It is the top-level model for both local and SSH sessions.
type SessionModel struct {
	registry  *registry.Registry
	store     *storage.Store
	config    core.RuntimeConfig
	opts      ViewerOptions
	state     sessionState
	menu      MenuModel
	viewer    *Model
	bookmarks *BookmarksModel
	ticking   bool // a tick is in flight; at most one tick chain runs
	quitting  bool
}

// NewSessionModel creates a session. When startLevel is set the session
// opens that level directly instead of the menu.
func NewSessionModel(reg *registry.Registry, store *storage.Store, cfg core.RuntimeConfig, opts ViewerOptions, startLevel string) (SessionModel, error) {
	m := SessionModel{
		registry: reg,
		store:    store,
		config:   cfg,
		opts:     opts,
		menu:     NewMenuModel(reg, cfg),
	}

	if startLevel != "" {
		if err := m.openViewer(startLevel); err != nil {
			return SessionModel{}, err
		}
		m.ticking = true // Init starts the chain
	}
	return m, nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.state == stateViewer {
		return m.viewer.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m.resize(msg)

	case TickMsg:
		// Ticks keep the viewer's frame loop alive even while the bookmark
		// list is on top. Without a viewer the chain ends here.
		if m.viewer == nil {
			m.ticking = false
			return m, nil
		}
		return m.updateViewer(msg)
	}

	switch m.state {
	case stateViewer:
		return m.updateViewer(msg)
	case stateBookmarks:
		return m.updateBookmarks(msg)
	default:
		return m.updateMenu(msg)
	}
}

// resize forwards a window size change to every live child model.
func (m SessionModel) resize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	newMenu, _ := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	if m.viewer != nil {
		newModel, _ := m.viewer.handleResize(msg)
		if viewer, ok := newModel.(Model); ok {
			m.viewer = &viewer
		}
	}
	if m.bookmarks != nil {
		newList, _ := m.bookmarks.Update(msg)
		if list, ok := newList.(BookmarksModel); ok {
			m.bookmarks = &list
		}
	}
	return m, nil
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()
		if err := m.openViewer(selected.LevelID); err != nil {
			// Shouldn't happen since the menu only lists registered worlds
			m.menu = NewMenuModel(m.registry, m.config)
			return m, nil
		}
		return m, m.startTicking()
	}

	return m, cmd
}

// updateViewer handles updates when a world is on screen. TickMsg is routed
// here regardless of state.
func (m SessionModel) updateViewer(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.viewer.Update(msg)
	if viewer, ok := newModel.(Model); ok {
		m.viewer = &viewer
	}

	if m.viewer.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.viewer.BackToMenu() {
		m.state = stateMenu
		m.viewer = nil
		m.bookmarks = nil
		m.menu = NewMenuModel(m.registry, m.config)
		return m, cmd
	}

	if m.state == stateViewer && m.viewer.WantsBookmarks() {
		list := NewBookmarksModel(m.store, m.viewer.LevelID(), m.viewer.Title(), m.config.ScreenW, m.config.ScreenH)
		m.bookmarks = &list
		m.state = stateBookmarks
	}

	return m, cmd
}

// updateBookmarks handles updates when the bookmark list is open.
func (m SessionModel) updateBookmarks(msg tea.Msg) (tea.Model, tea.Cmd) {
	newList, cmd := m.bookmarks.Update(msg)
	if list, ok := newList.(BookmarksModel); ok {
		m.bookmarks = &list
	}

	if m.bookmarks.IsQuitting() {
		// Leaving from the list still remembers where the camera was
		m.viewer.savePosition()
		m.quitting = true
		return m, tea.Quit
	}

	if b := m.bookmarks.Selected(); b != nil {
		m.viewer.JumpTo(b.X, b.Y)
		m.bookmarks = nil
		m.state = stateViewer
		return m, nil
	}

	if m.bookmarks.IsGoingBack() {
		m.viewer.resume()
		m.bookmarks = nil
		m.state = stateViewer
		return m, nil
	}

	return m, cmd
}

// openViewer builds a viewer with its own camera over a shared world.
func (m *SessionModel) openViewer(levelID string) error {
	w, err := m.registry.Get(levelID)
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	viewer := NewModel(w, m.store, m.config, m.opts)
	m.viewer = &viewer
	m.bookmarks = nil
	m.state = stateViewer
	return nil
}

// startTicking starts the frame loop unless a tick is already in flight.
func (m *SessionModel) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return m.viewer.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateViewer:
		return m.viewer.View()
	case stateBookmarks:
		return m.bookmarks.View()
	default:
		return m.menu.View()
	}
}

// Viewer returns the active viewer, or nil while the menu is shown.
func (m SessionModel) Viewer() *Model {
	return m.viewer
}

// InMenu reports whether the level menu is on screen.
func (m SessionModel) InMenu() bool {
	return m.state == stateMenu
}

// InBookmarks reports whether the bookmark list is on screen.
func (m SessionModel) InBookmarks() bool {
	return m.state == stateBookmarks
}
