package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/psaab/fortiparse/pkg/configstore"
)

const shellConfig = `config system interface
    edit "port1"
        set vdom "root"
        set ip 192.168.0.3 255.255.255.0
        set allowaccess ping https ssh
    next
end
config firewall policy
    edit 1
        set srcintf "port5"
        set dstintf "port1"
        set action accept
        set service "ALL"
    next
end
`

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fw.conf")
	if err := os.WriteFile(path, []byte(shellConfig), 0644); err != nil {
		t.Fatal(err)
	}
	store := configstore.New()
	if err := store.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	c := New(store)
	var buf bytes.Buffer
	c.out = &buf
	return c, &buf
}

func TestDispatchShowPolicies(t *testing.T) {
	c, buf := newTestCLI(t)
	if err := c.dispatch("show policies"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "policy 1:") {
		t.Errorf("output missing policy line: %q", out)
	}
	if !strings.Contains(out, "port5 -> port1") {
		t.Errorf("output missing interface pair: %q", out)
	}
}

func TestDispatchShowInterfaces(t *testing.T) {
	c, buf := newTestCLI(t)
	if err := c.dispatch("show interfaces"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "port1") || !strings.Contains(out, "192.168.0.3 255.255.255.0") {
		t.Errorf("output = %q", out)
	}
}

func TestDispatchShowSection(t *testing.T) {
	c, buf := newTestCLI(t)
	if err := c.dispatch("show section system.interface"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if !strings.Contains(buf.String(), `"port1"`) {
		t.Errorf("output = %q", buf.String())
	}

	if err := c.dispatch("show section no.such.path"); err == nil {
		t.Error("expected an error for a missing section")
	}
}

func TestDispatchShowSections(t *testing.T) {
	c, buf := newTestCLI(t)
	if err := c.dispatch("show sections"); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"system", "system.interface", "firewall.policy"} {
		if !strings.Contains(out, want) {
			t.Errorf("sections output missing %q: %q", want, out)
		}
	}
}

func TestDispatchUnloadedStore(t *testing.T) {
	c := New(configstore.New())
	c.out = &bytes.Buffer{}

	for _, cmd := range []string{"show configuration", "show policies", "show interfaces", "reload"} {
		if err := c.dispatch(cmd); err == nil {
			t.Errorf("%q on empty store should fail", cmd)
		}
	}
}

func TestDispatchUnknownCommand(t *testing.T) {
	c, _ := newTestCLI(t)
	err := c.dispatch("frobnicate")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("err = %v", err)
	}

	if err := c.dispatch("show nonsense"); err == nil {
		t.Error("expected an error for unknown show target")
	}
}

func TestDispatchExit(t *testing.T) {
	c, _ := newTestCLI(t)
	if err := c.dispatch("quit"); err != errExit {
		t.Errorf("quit: err = %v, want errExit", err)
	}
	if err := c.dispatch("exit"); err != errExit {
		t.Errorf("exit: err = %v, want errExit", err)
	}
}

func TestSplitCompletionInput(t *testing.T) {
	tests := []struct {
		in      string
		words   []string
		partial string
	}{
		{"", nil, ""},
		{"sh", nil, "sh"},
		{"show ", []string{"show"}, ""},
		{"show conf", []string{"show"}, "conf"},
		{"show configuration sys", []string{"show", "configuration"}, "sys"},
	}
	for _, tt := range tests {
		words, partial := splitCompletionInput(tt.in)
		if !reflect.DeepEqual(words, tt.words) || partial != tt.partial {
			t.Errorf("splitCompletionInput(%q) = %v, %q; want %v, %q",
				tt.in, words, partial, tt.words, tt.partial)
		}
	}
}

func TestShellCompleterDo(t *testing.T) {
	c, _ := newTestCLI(t)
	sc := &shellCompleter{cli: c}

	line := []rune("show conf")
	got, n := sc.Do(line, len(line))
	if n != len("conf") {
		t.Errorf("replace length = %d", n)
	}
	if len(got) != 1 || string(got[0]) != "iguration " {
		t.Errorf("completions = %q", got)
	}

	// Dynamic section completion from the loaded document.
	line = []rune("show configuration firewall.")
	got, _ = sc.Do(line, len(line))
	found := false
	for _, g := range got {
		if string(g) == "policy " {
			found = true
		}
	}
	if !found {
		t.Errorf("expected firewall.policy completion, got %q", got)
	}
}
