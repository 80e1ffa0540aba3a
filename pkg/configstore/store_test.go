package configstore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testConfig = `config system global
    set hostname "TestFirewall"
end
`

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fw.conf")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAndTree(t *testing.T) {
	s := New()
	if s.Loaded() {
		t.Error("new store should be empty")
	}

	path := writeConfig(t, testConfig)
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Loaded() {
		t.Error("store should be loaded")
	}
	if s.Path() != path {
		t.Errorf("Path = %q, want %q", s.Path(), path)
	}

	global, err := s.Tree().Section("system.global")
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if got := global.SettingString("hostname"); got != "TestFirewall" {
		t.Errorf("hostname = %q", got)
	}
}

func TestLoadFailureKeepsDocument(t *testing.T) {
	s := New()
	path := writeConfig(t, testConfig)
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	bad := writeConfig(t, "config system global\n") // missing end
	err := s.Load(bad)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), bad) {
		t.Errorf("error %q should name the file", err)
	}

	// Previous document must still be current.
	if s.Path() != path {
		t.Errorf("Path = %q, want %q after failed load", s.Path(), path)
	}
	if s.Tree() == nil {
		t.Error("tree lost after failed load")
	}
}

func TestReload(t *testing.T) {
	s := New()
	if err := s.Reload(); err == nil {
		t.Error("Reload on an empty store should fail")
	}

	path := writeConfig(t, testConfig)
	if err := s.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	updated := strings.Replace(testConfig, "TestFirewall", "Renamed", 1)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	global, _ := s.Tree().Section("system.global")
	if got := global.SettingString("hostname"); got != "Renamed" {
		t.Errorf("hostname after reload = %q", got)
	}
}

func TestHistory(t *testing.T) {
	s := New()
	a := writeConfig(t, testConfig)
	b := writeConfig(t, testConfig)

	if err := s.Load(a); err != nil {
		t.Fatal(err)
	}
	if err := s.Load(b); err != nil {
		t.Fatal(err)
	}

	hist := s.History()
	if len(hist) != 2 {
		t.Fatalf("history length = %d, want 2", len(hist))
	}
	// Most recent first.
	if hist[0].Path != b || hist[1].Path != a {
		t.Errorf("history order = %s, %s", hist[0].Path, hist[1].Path)
	}
}

func TestHistoryRingBuffer(t *testing.T) {
	h := NewHistory(3)
	for _, p := range []string{"a", "b", "c", "d"} {
		h.Push(&HistoryEntry{Path: p})
	}
	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3", h.Len())
	}
	list := h.List()
	if list[0].Path != "d" || list[2].Path != "b" {
		t.Errorf("ring buffer order: %s ... %s", list[0].Path, list[2].Path)
	}
}
