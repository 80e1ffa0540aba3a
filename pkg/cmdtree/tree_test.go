package cmdtree

import (
	"bytes"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/psaab/fortiparse/pkg/config"
)

func testTree(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.ParseText(`config system interface
    edit "port1"
        set vdom "root"
    next
end
config firewall policy
    edit 1
        set action accept
    next
end
`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return cfg
}

func TestSectionPaths(t *testing.T) {
	got := SectionPaths(testTree(t))
	want := []string{"system", "system.interface", "firewall", "firewall.policy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SectionPaths = %v, want %v", got, want)
	}

	if got := SectionPaths(nil); got != nil {
		t.Errorf("SectionPaths(nil) = %v", got)
	}
}

func TestCompleteFromTree(t *testing.T) {
	cfg := testTree(t)

	got := CompleteFromTree(ShellTree, nil, "sh", cfg)
	if !reflect.DeepEqual(got, []string{"show"}) {
		t.Errorf(`complete "sh" = %v`, got)
	}

	got = CompleteFromTree(ShellTree, []string{"show"}, "", cfg)
	sort.Strings(got)
	for _, want := range []string{"configuration", "interfaces", "policies"} {
		found := false
		for _, g := range got {
			if g == want {
				found = true
			}
		}
		if !found {
			t.Errorf("show completions missing %q: %v", want, got)
		}
	}

	// Dynamic section values under "show configuration".
	got = CompleteFromTree(ShellTree, []string{"show", "configuration"}, "system.", cfg)
	if !reflect.DeepEqual(got, []string{"system.interface"}) {
		t.Errorf("dynamic completions = %v", got)
	}

	if got := CompleteFromTree(ShellTree, []string{"bogus"}, "", cfg); got != nil {
		t.Errorf("unknown word completions = %v", got)
	}
}

func TestWriteHelp(t *testing.T) {
	var buf bytes.Buffer
	WriteHelp(&buf, []Candidate{
		{Name: "zeta", Desc: "last"},
		{Name: "alpha", Desc: "first"},
	})
	out := buf.String()
	if !strings.HasPrefix(out, "Possible completions:") {
		t.Errorf("help output = %q", out)
	}
	if strings.Index(out, "alpha") > strings.Index(out, "zeta") {
		t.Error("candidates should be sorted")
	}
}

func TestCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"show"}, "show"},
		{[]string{"show", "shell"}, "sh"},
		{[]string{"abc", "xyz"}, ""},
	}
	for _, tt := range tests {
		if got := CommonPrefix(tt.in); got != tt.want {
			t.Errorf("CommonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterPrefix(t *testing.T) {
	items := []string{"system", "firewall", "system.interface"}
	got := FilterPrefix(items, "sys")
	if !reflect.DeepEqual(got, []string{"system", "system.interface"}) {
		t.Errorf("FilterPrefix = %v", got)
	}
	if got := FilterPrefix(items, ""); !reflect.DeepEqual(got, items) {
		t.Errorf("empty prefix should return all items, got %v", got)
	}
}
