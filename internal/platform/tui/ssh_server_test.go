package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/emojidrop/internal/core"
	_ "github.com/vovakirdan/emojidrop/internal/games/emojidrop"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return s
}

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	return NewSessionModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}, nil)
}

func TestSessionID(t *testing.T) {
	m := newTestSession(t)
	if _, err := uuid.Parse(m.SessionID()); err != nil {
		t.Errorf("session ID %q is not a UUID: %v", m.SessionID(), err)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession(t)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Errorf("esc should return to the menu, screen = %v", m.screen)
	}
}

func TestSessionPlayAndQuit(t *testing.T) {
	m := newTestSession(t)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatalf("enter should start the game, screen = %v", m.screen)
	}

	m = updateSession(t, m, TickMsg{})
	if m.View() == "" {
		t.Error("game view should not be empty")
	}

	m = updateSession(t, m, runeKey('q'))
	if !m.quitting {
		t.Error("q should end the session")
	}
}

func TestSessionWindowSize(t *testing.T) {
	m := newTestSession(t)

	m = updateSession(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.config.ScreenW != 100 || m.config.ScreenH != 40 {
		t.Errorf("config should follow the window, got %dx%d", m.config.ScreenW, m.config.ScreenH)
	}
}
