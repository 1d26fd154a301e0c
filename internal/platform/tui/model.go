package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/camera"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/level"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

// ViewerOptions configures a viewer beyond the screen size.
type ViewerOptions struct {
	StepX, StepY  float64 // camera scroll step in pixels
	Logger        *log.Logger
	ScreenshotDir string // empty = ~/.tiles/screenshots
}

// Model is the Bubble Tea model for viewing one world.
// The world is shared and read-only; the camera belongs to the model.
type Model struct {
	world          *level.World
	cam            *camera.Camera
	sub            world.Subset
	screen         *core.Screen
	store          *storage.Store
	config         core.RuntimeConfig
	opts           ViewerOptions
	keys           *KeyMapper
	help           help.Model
	logger         *log.Logger
	status         string // last transient message
	redraw         bool
	quitting       bool
	backToMenu     bool
	wantsBookmarks bool
}

// NewModel creates a viewer for w. When store holds a position for the
// level the camera starts there, otherwise at the world's top-left corner.
func NewModel(w *level.World, store *storage.Store, cfg core.RuntimeConfig, opts ViewerOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.StepX <= 0 {
		opts.StepX = 10
	}
	if opts.StepY <= 0 {
		opts.StepY = 10
	}

	m := Model{
		world:  w,
		store:  store,
		config: cfg,
		opts:   opts,
		keys:   NewKeyMapper(),
		help:   help.New(),
		logger: opts.Logger.With("level", w.Level.ID),
	}

	viewW, viewH := cfg.ViewportSize(m.statusRows())
	m.cam = camera.New(viewW, viewH, camera.BoundsOf(w.Grid.Bounds()), opts.StepX, opts.StepY)
	m.screen = core.NewScreen(cfg.ScreenW, m.viewRows())
	m.help.Width = cfg.ScreenW

	if store != nil {
		pos, ok, err := store.LastPosition(w.Level.ID)
		switch {
		case err != nil:
			m.logger.Warn("could not restore position", "err", err)
		case ok:
			m.cam.CenterOn(pos.X, pos.Y)
			m.logger.Debug("position restored", "x", pos.X, "y", pos.Y)
		}
	}

	m.refresh()
	return m
}

// Init starts the render loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Back):
		m.savePosition()
		m.backToMenu = true
		return m, nil
	case key.Matches(msg, keys.Bookmarks):
		m.savePosition()
		m.wantsBookmarks = true
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.savePosition()
		m.quitting = true
		return m, tea.Quit
	}

	if action.IsMove() {
		dir, _ := Direction(action)
		m.cam.Move(dir)
		m.logger.Debug("camera moved",
			"dir", dir,
			"key", msg.String(),
			"alt", msg.Alt,
			"x", m.cam.X(),
			"y", m.cam.Y(),
			"left", m.cam.Left(),
			"top", m.cam.Top(),
		)
		return m, nil
	}

	switch action {
	case core.ActionBookmark:
		m.addBookmark()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout fits the screen and camera to the terminal minus the status area.
func (m *Model) layout() {
	m.screen.Resize(m.config.ScreenW, m.viewRows())
	m.cam.SetViewSize(m.config.ViewportSize(m.statusRows()))
	m.redraw = true
}

// handleTick redraws when the camera moved since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.cam.Dirty() || m.redraw {
		m.refresh()
	}
	return m, tickCmd(m.config.TickRate)
}

// refresh recomputes the visible subset and repaints the screen buffer.
func (m *Model) refresh() {
	m.sub = m.world.Grid.VisibleSubset(m.cam.Rect())
	m.screen.Clear()
	DrawSubset(m.screen, m.sub, m.config.CellW, m.config.CellH, m.screen.Height())
	m.cam.ClearDirty()
	m.redraw = false
}

func (m Model) statusRows() int {
	if m.help.ShowAll {
		return 1 + len(m.keys.Keys().FullHelp()[0])
	}
	return 2
}

func (m Model) viewRows() int {
	return max(m.config.ScreenH-m.statusRows(), 1)
}

// savePosition stores the camera centre so the level reopens where it was left.
func (m *Model) savePosition() {
	if m.store == nil {
		return
	}
	if err := m.store.SavePosition(m.world.Level.ID, m.cam.X(), m.cam.Y()); err != nil {
		m.logger.Warn("could not save position", "err", err)
	}
}

// addBookmark saves the current position under the first free "mark-N" name.
func (m *Model) addBookmark() {
	if m.store == nil {
		m.status = "bookmarks need a database"
		return
	}
	marks, err := m.store.Bookmarks(m.world.Level.ID)
	if err != nil {
		m.logger.Warn("could not list bookmarks", "err", err)
		m.status = "bookmark failed"
		return
	}
	taken := make(map[string]bool, len(marks))
	for _, b := range marks {
		taken[b.Name] = true
	}
	n := len(marks) + 1
	for taken[fmt.Sprintf("mark-%d", n)] {
		n++
	}
	name := fmt.Sprintf("mark-%d", n)

	if _, err := m.store.SaveBookmark(m.world.Level.ID, name, m.cam.X(), m.cam.Y()); err != nil {
		m.logger.Warn("could not save bookmark", "err", err)
		m.status = "bookmark failed"
		return
	}
	m.logger.Info("bookmark saved", "name", name, "x", m.cam.X(), "y", m.cam.Y())
	m.status = "saved " + name
}

// JumpTo centres the camera on (x, y) and returns from the bookmark list.
func (m *Model) JumpTo(x, y float64) {
	m.cam.CenterOn(x, y)
	m.resume()
}

// resume clears the bookmark request and forces a repaint.
func (m *Model) resume() {
	m.wantsBookmarks = false
	m.redraw = true
}

// saveScreenshot writes the rendered view, colours included, to a file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".tiles", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.ans", m.world.Level.ID, timestamp))

	if err := os.WriteFile(path, []byte(RenderScreen(m.screen)+"\n"), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "err", err)
		m.status = "screenshot failed"
		return
	}
	m.status = "screenshot " + filepath.Base(path)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("236"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// groundAt describes the tile under the viewport centre.
func (m Model) groundAt() (row, col int, ground string) {
	cx, cy := m.cam.Rect().Center()
	row, col = m.world.Grid.IndexAt(cx, cy)
	switch {
	case !m.world.Grid.Bounds().Contains(cx, cy):
		return row, col, "void"
	case m.world.Grid.Walkable(row, col):
		return row, col, "walkable"
	default:
		return row, col, "blocked"
	}
}

// statusLine describes the camera and the visible block of tiles.
func (m Model) statusLine() string {
	row, col, ground := m.groundAt()

	line := fmt.Sprintf(" %s  x=%.0f y=%.0f  tile (%d,%d) %s  rows %d+%d cols %d+%d  offset %.0f,%.0f",
		m.world.Level.Name,
		m.cam.X(), m.cam.Y(),
		row, col, ground,
		m.sub.FirstRow, m.sub.Rows(),
		m.sub.FirstCol, m.sub.Columns(),
		m.sub.OffsetX, m.sub.OffsetY,
	)
	if m.status != "" {
		line += "  | " + m.status
	}
	return statusStyle.Width(m.config.ScreenW).MaxWidth(m.config.ScreenW).Render(line)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.statusLine() + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Camera returns the viewer's camera.
func (m Model) Camera() *camera.Camera {
	return m.cam
}

// Subset returns the most recently drawn subset.
func (m Model) Subset() world.Subset {
	return m.sub
}

// Title returns the display name of the level being viewed.
func (m Model) Title() string {
	return m.world.Level.Name
}

// LevelID returns the ID of the level being viewed.
func (m Model) LevelID() string {
	return m.world.Level.ID
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the level menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// WantsBookmarks returns true if user opened the bookmark list.
func (m Model) WantsBookmarks() bool {
	return m.wantsBookmarks
}

// Run starts a Bubble Tea program for the given model.
func Run(model tea.Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
