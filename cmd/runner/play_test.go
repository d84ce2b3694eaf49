package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/puku-runner/internal/storage"
)

func TestPrintSummary(t *testing.T) {
	ledger, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer ledger.Close()

	var buf bytes.Buffer
	printSummary(&buf, ledger, "runner")
	if buf.Len() != 0 {
		t.Errorf("empty ledger printed %q", buf.String())
	}

	ledger.RecordRun(storage.Run{Mode: "runner", Score: 25, Ordinary: 3, Ticks: 600})
	ledger.RecordRun(storage.Run{Mode: "runner", Score: 40, Ordinary: 5, Premium: 1, Ticks: 900})

	printSummary(&buf, ledger, "runner")
	out := buf.String()
	for _, want := range []string{"Runs this session: 2", "Best: 40", "8 ordinary, 1 premium"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Wins") {
		t.Error("no wins should be reported")
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("expected error for invalid level")
	}

	path := filepath.Join(t.TempDir(), "runner.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Info("hello")
	closeLog()
}

func TestLoadSprites(t *testing.T) {
	var buf bytes.Buffer
	if sheet := loadSprites(&buf, ""); sheet == nil || buf.Len() != 0 {
		t.Errorf("empty path should use the embedded sheet quietly, got %q", buf.String())
	}

	buf.Reset()
	sheet := loadSprites(&buf, filepath.Join(t.TempDir(), "missing.yaml"))
	if sheet == nil || !strings.Contains(buf.String(), "using built-in sprites") {
		t.Errorf("missing file should warn and fall back, got %q", buf.String())
	}

	path := filepath.Join(t.TempDir(), "sprites.yaml")
	data := []byte("coins:\n  ordinary: { name: coin, width: 0, height: 30, art: ['o'] }\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	buf.Reset()
	sheet = loadSprites(&buf, path)
	if !sheet.Coins.Ordinary.IsPlaceholder() {
		t.Error("broken coin should be drawn as a placeholder")
	}
	if !strings.Contains(buf.String(), "sprite coin:") {
		t.Errorf("placeholder warning missing, got %q", buf.String())
	}
}
