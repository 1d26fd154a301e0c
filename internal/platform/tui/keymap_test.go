package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/camera"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func quietLogger() *log.Logger {
	return log.New(&bytes.Buffer{})
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"k", runeKey("k"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"bookmark", runeKey("m"), core.ActionBookmark, false},
		{"help", runeKey("?"), core.ActionHelp, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.expected {
				t.Errorf("MapKey() action = %v, expected %v", action, tt.expected)
			}
			if quit != tt.quit {
				t.Errorf("MapKey() quit = %v, expected %v", quit, tt.quit)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		action   core.Action
		expected camera.Direction
		ok       bool
	}{
		{core.ActionLeft, camera.Left, true},
		{core.ActionRight, camera.Right, true},
		{core.ActionUp, camera.Up, true},
		{core.ActionDown, camera.Down, true},
		{core.ActionBookmark, 0, false},
		{core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		dir, ok := Direction(tt.action)
		if ok != tt.ok || (ok && dir != tt.expected) {
			t.Errorf("Direction(%v) = %v, %v, expected %v, %v", tt.action, dir, ok, tt.expected, tt.ok)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
