package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	v := Get()
	if v == "" {
		t.Fatal("version is empty")
	}
	if strings.TrimSpace(v) != v {
		t.Errorf("version %q has surrounding whitespace", v)
	}
}

func TestFull(t *testing.T) {
	if full := Full(); !strings.HasPrefix(full, "relm "+Get()) {
		t.Errorf("Full() = %q", full)
	}
}
