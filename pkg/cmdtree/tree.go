// Package cmdtree defines the command tree for the fortiparse interactive
// shell. It drives tab completion and '?' help in pkg/cli.
package cmdtree

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/psaab/fortiparse/pkg/config"
)

// Node defines a completion tree node with description, children, and
// optional dynamic values drawn from the loaded configuration.
type Node struct {
	Desc      string
	Children  map[string]*Node
	DynamicFn func(cfg *config.Config) []string
}

// Candidate holds a command name and its description for display.
type Candidate struct {
	Name string
	Desc string
}

// ShellTree defines tab completion for the interactive shell.
var ShellTree = map[string]*Node{
	"show": {Desc: "Show information", Children: map[string]*Node{
		"configuration": {Desc: "Show configuration as JSON [section]", DynamicFn: SectionPaths},
		"section":       {Desc: "Show one section as JSON", DynamicFn: SectionPaths},
		"policies":      {Desc: "Show firewall policies in evaluation order"},
		"interfaces":    {Desc: "Show system interfaces"},
		"sections":      {Desc: "List top-level sections"},
		"history":       {Desc: "Show document load history"},
	}},
	"load":   {Desc: "Load a configuration file"},
	"reload": {Desc: "Re-parse the current file"},
	"quit":   {Desc: "Exit the shell"},
	"exit":   {Desc: "Exit the shell"},
}

// SectionPaths returns every section's dotted path from the loaded
// configuration, e.g. "system", "system.interface", "firewall.policy".
func SectionPaths(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}
	var paths []string
	var walk func(prefix string, names []string, child func(string) *config.Node)
	walk = func(prefix string, names []string, child func(string) *config.Node) {
		for _, name := range names {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}
			paths = append(paths, path)
			n := child(name)
			walk(path, n.ChildNames(), n.Child)
		}
	}
	walk("", cfg.ChildNames(), cfg.Child)
	return paths
}

// HelpCandidates returns Candidates from a tree's children for help display.
func HelpCandidates(tree map[string]*Node) []Candidate {
	candidates := make([]Candidate, 0, len(tree))
	for name, node := range tree {
		candidates = append(candidates, Candidate{Name: name, Desc: node.Desc})
	}
	return candidates
}

// CompleteFromTree walks the tree to find completion candidates for the
// given words and partial.
func CompleteFromTree(tree map[string]*Node, words []string, partial string, cfg *config.Config) []string {
	current := tree
	var currentNode *Node
	dynamicConsumed := false
	for _, w := range words {
		dynamicConsumed = false
		node, ok := current[w]
		if !ok {
			// Word not in static children. If the parent has a
			// DynamicFn, treat it as a dynamic value and stay at the
			// same children level.
			if currentNode != nil && currentNode.DynamicFn != nil {
				dynamicConsumed = true
				continue
			}
			return nil
		}
		currentNode = node
		if node.Children == nil {
			if node.DynamicFn != nil && cfg != nil {
				return FilterPrefix(node.DynamicFn(cfg), partial)
			}
			return nil
		}
		current = node.Children
	}
	candidates := KeysOf(current)
	if !dynamicConsumed && currentNode != nil && currentNode.DynamicFn != nil && cfg != nil {
		candidates = append(candidates, currentNode.DynamicFn(cfg)...)
	}
	return FilterPrefix(candidates, partial)
}

// CompleteFromTreeWithDesc walks the tree returning name+description pairs.
func CompleteFromTreeWithDesc(tree map[string]*Node, words []string, partial string, cfg *config.Config) []Candidate {
	current := tree
	var currentNode *Node
	dynamicConsumed := false
	for _, w := range words {
		dynamicConsumed = false
		node, ok := current[w]
		if !ok {
			if currentNode != nil && currentNode.DynamicFn != nil {
				dynamicConsumed = true
				continue
			}
			return nil
		}
		currentNode = node
		if node.Children == nil {
			if node.DynamicFn != nil && cfg != nil {
				var candidates []Candidate
				for _, name := range node.DynamicFn(cfg) {
					if strings.HasPrefix(name, partial) {
						candidates = append(candidates, Candidate{Name: name, Desc: "(configured)"})
					}
				}
				return candidates
			}
			return nil
		}
		current = node.Children
	}

	var candidates []Candidate
	for name, node := range current {
		if strings.HasPrefix(name, partial) {
			candidates = append(candidates, Candidate{Name: name, Desc: node.Desc})
		}
	}
	if !dynamicConsumed && currentNode != nil && currentNode.DynamicFn != nil && cfg != nil {
		for _, name := range currentNode.DynamicFn(cfg) {
			if strings.HasPrefix(name, partial) {
				candidates = append(candidates, Candidate{Name: name, Desc: "(configured)"})
			}
		}
	}
	return candidates
}

// WriteHelp prints aligned completion candidates to w.
// The entire output is built as a single string and written in one call
// so that readline's wrapWriter triggers only one Refresh cycle.
func WriteHelp(w io.Writer, candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })
	maxWidth := 20
	for _, c := range candidates {
		if len(c.Name)+2 > maxWidth {
			maxWidth = len(c.Name) + 2
		}
	}
	var sb strings.Builder
	sb.WriteString("Possible completions:\n")
	for _, c := range candidates {
		if c.Desc != "" {
			fmt.Fprintf(&sb, "  %-*s %s\n", maxWidth, c.Name, c.Desc)
		} else {
			fmt.Fprintf(&sb, "  %s\n", c.Name)
		}
	}
	io.WriteString(w, sb.String())
}

// CommonPrefix returns the longest shared prefix among the given strings.
func CommonPrefix(items []string) string {
	if len(items) == 0 {
		return ""
	}
	prefix := items[0]
	for _, s := range items[1:] {
		for !strings.HasPrefix(s, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}

// KeysOf returns an unsorted list of keys from a Node map.
func KeysOf(m map[string]*Node) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// FilterPrefix returns only items that start with the given prefix.
func FilterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		return items
	}
	var result []string
	for _, item := range items {
		if strings.HasPrefix(item, prefix) {
			result = append(result, item)
		}
	}
	return result
}
