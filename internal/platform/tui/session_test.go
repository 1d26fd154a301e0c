package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/level"
)

// send feeds messages to a session and returns the updated model and last command.
func send(t *testing.T, m SessionModel, msgs ...tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		if m, ok = next.(SessionModel); !ok {
			t.Fatalf("Update() returned %T, expected SessionModel", next)
		}
	}
	return m, cmd
}

func TestSessionMenuToViewer(t *testing.T) {
	m, err := NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	if !m.InMenu() || m.Viewer() != nil {
		t.Fatal("session should start in the menu")
	}

	// Levels are listed by ID: meadow, then pond.
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Viewer() == nil {
		t.Fatal("enter should open the viewer")
	}
	if m.Viewer().LevelID() != "pond" {
		t.Errorf("LevelID() = %q, expected pond", m.Viewer().LevelID())
	}
	if cmd == nil {
		t.Error("opening a viewer should start the frame loop")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.InMenu() || m.Viewer() != nil {
		t.Error("esc should return to the menu")
	}
}

func TestSessionStartLevel(t *testing.T) {
	m, err := NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "meadow")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}
	if m.InMenu() || m.Viewer() == nil {
		t.Fatal("session should open the start level directly")
	}
	if m.Init() == nil {
		t.Error("Init() should start the frame loop")
	}

	_, err = NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "nowhere")
	if !errors.Is(err, level.ErrNotFound) {
		t.Errorf("unknown start level error = %v, expected ErrNotFound", err)
	}
}

func TestSessionSingleTickChain(t *testing.T) {
	m, _ := NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "meadow")

	// Back to the menu and straight into a level while a tick is in flight.
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("a second frame loop should not start while a tick is pending")
	}

	// The pending tick reaches the new viewer and keeps the loop going.
	if _, cmd = send(t, m, TickMsg{}); cmd == nil {
		t.Error("tick should be forwarded to the viewer")
	}
}

func TestSessionTickWithoutViewer(t *testing.T) {
	m, _ := NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "")

	m, cmd := send(t, m, TickMsg{})
	if cmd != nil {
		t.Error("tick without a viewer should end the chain")
	}
	if _, cmd = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}); cmd == nil {
		t.Error("opening a viewer after the chain ended should restart it")
	}
}

func TestSessionBookmarkJump(t *testing.T) {
	store := openTestStore(t)
	m, err := NewSessionModel(testRegistry(t), store, core.DefaultConfig(), testOptions(), "meadow")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	m, _ = send(t, m, runeKey("m"), runeKey("l"), runeKey("l"), runeKey("b"))
	if !m.InBookmarks() {
		t.Fatal("b should open the bookmark list")
	}
	if m.Viewer().Camera().X() != 340 {
		t.Errorf("camera X = %v, expected 340", m.Viewer().Camera().X())
	}

	// Ticks keep flowing to the viewer under the list.
	if _, cmd := send(t, m, TickMsg{}); cmd == nil {
		t.Error("tick should reach the viewer while the list is open")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.InBookmarks() {
		t.Fatal("enter should close the bookmark list")
	}
	if m.Viewer().Camera().X() != 320 || m.Viewer().Camera().Y() != 176 {
		t.Errorf("camera = (%v,%v), expected (320,176)", m.Viewer().Camera().X(), m.Viewer().Camera().Y())
	}
	if m.Viewer().WantsBookmarks() {
		t.Error("viewer should no longer want the bookmark list")
	}
}

func TestSessionBookmarkBackAndDelete(t *testing.T) {
	store := openTestStore(t)
	m, _ := NewSessionModel(testRegistry(t), store, core.DefaultConfig(), testOptions(), "meadow")

	m, _ = send(t, m, runeKey("m"), runeKey("b"), runeKey("d"))
	marks, err := store.Bookmarks("meadow")
	if err != nil {
		t.Fatalf("Bookmarks() failed: %v", err)
	}
	if len(marks) != 0 {
		t.Errorf("len(Bookmarks()) = %d, expected 0 after delete", len(marks))
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.InBookmarks() || m.InMenu() {
		t.Error("esc in the list should return to the viewer")
	}

	// b again reopens the list rather than being swallowed.
	m, _ = send(t, m, runeKey("b"))
	if !m.InBookmarks() {
		t.Error("b should reopen the bookmark list")
	}
}

func TestSessionQuitFromBookmarksSavesPosition(t *testing.T) {
	store := openTestStore(t)
	m, _ := NewSessionModel(testRegistry(t), store, core.DefaultConfig(), testOptions(), "meadow")

	m, _ = send(t, m, runeKey("j"), runeKey("b"))
	_, cmd := send(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q in the list should quit")
	}

	pos, ok, err := store.LastPosition("meadow")
	if err != nil || !ok {
		t.Fatalf("LastPosition() = %v, %v, expected a saved position", ok, err)
	}
	if pos.Y != 186 {
		t.Errorf("saved Y = %v, expected 186", pos.Y)
	}
}

func TestSessionResizeReachesViewer(t *testing.T) {
	m, _ := NewSessionModel(testRegistry(t), nil, core.DefaultConfig(), testOptions(), "meadow")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if w, h := m.Viewer().Camera().ViewSize(); w != 320 || h != 160 {
		t.Errorf("ViewSize() = %vx%v, expected 320x160", w, h)
	}
}
