package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "memoria.log")

	log, err := NewFile("development", path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	log.Infow("explanation requested", "topic", "Cacerolazo")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"explanation requested"`) || !strings.Contains(line, `"topic":"Cacerolazo"`) {
		t.Fatalf("unexpected log output: %s", line)
	}
}

func TestBaseConfig_Levels(t *testing.T) {
	if lvl := baseConfig("production").Level.Level().String(); lvl != "info" {
		t.Errorf("production level = %s, want info", lvl)
	}
	if lvl := baseConfig("development").Level.Level().String(); lvl != "debug" {
		t.Errorf("development level = %s, want debug", lvl)
	}
}
