package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"PassKeeper/internal/config"
	"PassKeeper/internal/desktop"
)

// withTempConfig направляет базу во временный каталог на время теста.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		ClientDBPath:   filepath.Join(t.TempDir(), "passwords.db"),
		PasswordLength: 12,
		PasswordCount:  10,
	}
}

// captureOut подменяет Out буфером и возвращает его.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := Out
	Out = &buf
	t.Cleanup(func() { Out = orig })
	return &buf
}

// withInput подменяет In для ответов на подтверждения.
func withInput(t *testing.T, s string) {
	t.Helper()
	orig := In
	In = strings.NewReader(s)
	t.Cleanup(func() { In = orig })
}

// withDesktop подменяет Desktop записывающей заглушкой.
func withDesktop(t *testing.T) *desktop.Recorder {
	t.Helper()
	rec := &desktop.Recorder{}
	orig := Desktop
	Desktop = rec
	t.Cleanup(func() { Desktop = orig })
	return rec
}

// unusableConfig указывает базу внутрь обычного файла — открыть её нельзя.
func unusableConfig(t *testing.T) *config.Config {
	t.Helper()
	file := filepath.Join(t.TempDir(), "not_a_dir")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatalf("prepare tmp file: %v", err)
	}
	cfg := withTempConfig(t)
	cfg.ClientDBPath = filepath.Join(file, "passwords.db")
	return cfg
}
