package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/storage"
)

// BookmarksKeyMap defines key bindings for the bookmark list.
type BookmarksKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to show in the mini help view.
func (k BookmarksKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Back}
}

// FullHelp returns keybindings for the expanded help view.
func (k BookmarksKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultBookmarksKeyMap returns the default bookmark list keybindings.
func DefaultBookmarksKeyMap() BookmarksKeyMap {
	return BookmarksKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BookmarksModel is the Bubble Tea model for a level's bookmark list.
type BookmarksModel struct {
	levelID   string
	title     string
	store     *storage.Store
	bookmarks []storage.Bookmark
	table     table.Model
	help      help.Model
	keys      BookmarksKeyMap
	width     int
	height    int
	err       error
	selected  *storage.Bookmark
	quitting  bool
	goingBack bool
}

// NewBookmarksModel creates a bookmark list for one level.
func NewBookmarksModel(store *storage.Store, levelID, title string, width, height int) BookmarksModel {
	h := help.New()
	h.ShowAll = false

	m := BookmarksModel{
		levelID: levelID,
		title:   title,
		store:   store,
		keys:    DefaultBookmarksKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	m.loadBookmarks()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *BookmarksModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 14},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "Saved", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadBookmarks reads the level's bookmarks from the store.
func (m *BookmarksModel) loadBookmarks() {
	m.bookmarks, m.err = nil, nil
	if m.store != nil {
		m.bookmarks, m.err = m.store.Bookmarks(m.levelID)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current bookmarks.
func (m *BookmarksModel) updateTableRows() {
	rows := make([]table.Row, len(m.bookmarks))
	for i, b := range m.bookmarks {
		rows[i] = table.Row{
			b.Name,
			fmt.Sprintf("%.0f", b.X),
			fmt.Sprintf("%.0f", b.Y),
			b.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.GotoTop()
	}
}

// Init initializes the bookmark list model.
func (m BookmarksModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the bookmark list.
func (m BookmarksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.bookmarks) {
				b := m.bookmarks[i]
				m.selected = &b
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if i := m.table.Cursor(); i >= 0 && i < len(m.bookmarks) && m.store != nil {
				if _, err := m.store.DeleteBookmark(m.levelID, m.bookmarks[i].Name); err != nil {
					m.err = err
				}
				m.loadBookmarks()
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the bookmark list.
func (m BookmarksModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("BOOKMARKS - "+m.title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
		b.WriteString("\n")
	}

	// Help bar
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m BookmarksModel) renderTableContent() string {
	if len(m.bookmarks) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No bookmarks yet.\nPress m in the viewer to save one!")
	}

	return m.table.View()
}

// Selected returns the bookmark chosen with enter, or nil.
func (m BookmarksModel) Selected() *storage.Bookmark {
	return m.selected
}

// IsGoingBack returns true if user wants to go back to the viewer.
func (m BookmarksModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m BookmarksModel) IsQuitting() bool {
	return m.quitting
}
