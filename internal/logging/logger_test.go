package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	l, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") error = %v", err)
	}
	// Must not panic.
	l.Log("hello %d", 1)
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNew_WritesTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")

	l, err := New(path)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Log("widget %s started", "abc")
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "relm debug log started") {
		t.Errorf("missing header in %q", content)
	}
	if !strings.Contains(content, "widget abc started") {
		t.Errorf("missing message in %q", content)
	}
}

func TestNew_UnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// A regular file cannot act as a parent directory.
	if _, err := New(filepath.Join(blocker, "debug.log")); err == nil {
		t.Fatal("expected error when parent is a file")
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *DebugLogger
	l.Log("ignored")
	if err := l.Close(); err != nil {
		t.Errorf("Close() on nil logger error = %v", err)
	}
}

func TestSetDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	l, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	prev := SetDefault(l)
	defer SetDefault(prev)

	Debugf("via default %d", 42)
	l.Close()

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "via default 42") {
		t.Errorf("default logger did not receive message: %q", data)
	}
}
