package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckConfig(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"no custom file", "", false},
		{"valid file", writeConfig(t, "session:\n  lives: 4\n"), false},
		{"negative lives", writeConfig(t, "session:\n  lives: -4\n"), true},
		{"broken yaml", writeConfig(t, "session: [\n"), true},
		{"missing file", filepath.Join(t.TempDir(), "nope.yaml"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := checkConfig(tc.path)
			if (err != nil) != tc.wantErr {
				t.Errorf("checkConfig(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestCommandsRejectInvalidConfig(t *testing.T) {
	bad := writeConfig(t, "session:\n  lives: -4\n")

	flagConfig, flagWatch = bad, false
	defer func() { flagConfig = "" }()
	if err := runPlay(playCmd, nil); err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("play error = %v, expected a config error", err)
	}

	flagServeConfig = bad
	defer func() { flagServeConfig = "" }()
	if err := runServe(serveCmd, nil); err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("serve error = %v, expected a config error", err)
	}
}

func TestScoresClear(t *testing.T) {
	flagDBPath = filepath.Join(t.TempDir(), "runs.db")
	defer func() { flagDBPath = "~/.platformer/runs.db" }()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveRun(storage.Run{GameID: platformer.ID, Score: 700, Outcome: storage.OutcomeWin})
	store.Close()

	var out bytes.Buffer
	scoresCmd.SetOut(&out)
	defer scoresCmd.SetOut(nil)

	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "00000700") {
		t.Errorf("scores output = %q, expected the saved run", out.String())
	}

	flagScoresClear = true
	defer func() { flagScoresClear = false }()
	out.Reset()
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatal(err)
	}

	flagScoresClear = false
	out.Reset()
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No runs recorded yet.") {
		t.Errorf("scores after clear = %q", out.String())
	}
}
