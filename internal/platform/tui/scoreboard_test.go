package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "platformer", "Super Platformer", 80, 24)
	view := m.View()
	if !strings.Contains(view, "No runs recorded yet") {
		t.Errorf("empty scoreboard view = %q", view)
	}
	if !strings.Contains(view, "no runs yet") {
		t.Error("stats line should say there are no runs")
	}
}

func TestScoreboardListsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "platformer", Score: 900, Coins: 3, Outcome: storage.OutcomeLoss})
	store.SaveRun(storage.Run{GameID: "platformer", Score: 21450, Coins: 17, Lives: 2, Outcome: storage.OutcomeWin})

	m := NewScoreboardModel(store, "platformer", "Super Platformer", 100, 30)
	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, expected 2", len(m.runs))
	}

	rows := runRows(m.runs)
	if rows[0][1] != "021450" || rows[0][4] != "clear" || rows[1][4] != "lost" {
		t.Errorf("rows = %v", rows)
	}
	if line := m.statsLine(); !strings.Contains(line, "2 runs") || !strings.Contains(line, "1 cleared") {
		t.Errorf("stats line = %q", line)
	}

	store.SaveRun(storage.Run{GameID: "platformer", Score: 5, Outcome: storage.OutcomeLoss})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if got := len(next.(ScoreboardModel).runs); got != 3 {
		t.Errorf("after reload %d runs, expected 3", got)
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "platformer", "Super Platformer", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || next.View() != "" {
		t.Error("esc should quit the scoreboard")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("abcd", 10); got != "   abcd" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("too long", 4); got != "too long" {
		t.Errorf("centerText should leave long text alone, got %q", got)
	}
}
