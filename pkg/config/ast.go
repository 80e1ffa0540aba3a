package config

import (
	"fmt"
	"strings"
)

// Value is the token sequence produced by one set statement.
// A single-token value is still a sequence; Scalar gives the ergonomic form.
type Value []string

// IsScalar reports whether the value is a single token.
func (v Value) IsScalar() bool { return len(v) == 1 }

// Scalar returns the single token of a one-token value, or the tokens joined
// by spaces otherwise.
func (v Value) Scalar() string {
	if len(v) == 1 {
		return v[0]
	}
	return strings.Join(v, " ")
}

func (v Value) String() string { return v.Scalar() }

// editKey is the reserved child key under which a block's edit table lives,
// matching the serialized output shape.
const editKey = "edit"

// body holds the ordered children of one open scope: settings and nested
// config blocks, keyed uniquely, in first-appearance order.
type body struct {
	order    []string
	nodes    map[string]*Node
	settings map[string]Value
}

// Node is one "config <name> ... end" block. A multi-word block name becomes
// one nested Node per word: "config system interface" is system -> interface.
type Node struct {
	Name string
	body
	edits *EditTable
}

// Config is the root of a parsed configuration tree.
type Config struct {
	body
}

// child looks up or creates the sub-block named name, preserving the position
// of its first appearance. Re-entering the same path merges into the existing
// node instead of duplicating the key.
func (b *body) child(name string) *Node {
	if n, ok := b.nodes[name]; ok {
		return n
	}
	if b.nodes == nil {
		b.nodes = make(map[string]*Node)
	}
	n := &Node{Name: name}
	b.nodes[name] = n
	b.order = append(b.order, name)
	return n
}

// set stores a setting, overwriting any prior value for the key
// (last-write-wins) while keeping its first-seen position.
func (b *body) set(key string, v Value) {
	if b.settings == nil {
		b.settings = make(map[string]Value)
	}
	if _, ok := b.settings[key]; !ok {
		b.order = append(b.order, key)
	}
	b.settings[key] = v
}

// unset removes a setting if present. Absent keys are not an error.
func (b *body) unset(key string) {
	if _, ok := b.settings[key]; !ok {
		return
	}
	delete(b.settings, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Child returns the sub-block named name, or nil if absent.
func (b *body) Child(name string) *Node {
	return b.nodes[name]
}

// ChildNames returns the names of sub-blocks in first-appearance order.
func (b *body) ChildNames() []string {
	var names []string
	for _, k := range b.order {
		if _, ok := b.nodes[k]; ok {
			names = append(names, k)
		}
	}
	return names
}

// Setting returns the value token sequence for key.
func (b *body) Setting(key string) (Value, bool) {
	v, ok := b.settings[key]
	return v, ok
}

// SettingString returns the scalar form of the value for key, or "" if the
// key is absent.
func (b *body) SettingString(key string) string {
	if v, ok := b.settings[key]; ok {
		return v.Scalar()
	}
	return ""
}

// SettingKeys returns setting keys in first-appearance order.
func (b *body) SettingKeys() []string {
	var keys []string
	for _, k := range b.order {
		if _, ok := b.settings[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Edits returns the node's edit table, or nil when the block has no edit
// entries.
func (n *Node) Edits() *EditTable {
	return n.edits
}

// editTable looks up or creates the node's edit table, reserving its position
// among the node's children at the point the first edit appears.
func (n *Node) editTable() *EditTable {
	if n.edits == nil {
		n.edits = &EditTable{}
		n.order = append(n.order, editKey)
	}
	return n.edits
}

// Section resolves a dotted path of block names from the root, e.g.
// "system.interface". It returns an error naming the first missing element.
func (c *Config) Section(path string) (*Node, error) {
	parts := strings.Split(path, ".")
	var cur *body = &c.body
	var node *Node
	for i, part := range parts {
		node = cur.Child(part)
		if node == nil {
			return nil, fmt.Errorf("section %q not found", strings.Join(parts[:i+1], "."))
		}
		cur = &node.body
	}
	return node, nil
}

// EditTable is an insertion-ordered table of "edit <id> ... next" entries.
// Iteration order is each identifier's first appearance in the source, the
// order the document intends for rule evaluation.
type EditTable struct {
	ids     []string
	entries map[string]*Entry
}

// Entry is one edit block: ordered settings plus nested config sub-blocks.
type Entry struct {
	ID string
	body
}

// entry looks up or creates the entry for id. Re-editing an existing
// identifier reuses the entry (open-or-create, as on the device) and keeps
// its original table position.
func (t *EditTable) entry(id string) *Entry {
	if e, ok := t.entries[id]; ok {
		return e
	}
	if t.entries == nil {
		t.entries = make(map[string]*Entry)
	}
	e := &Entry{ID: id}
	t.entries[id] = e
	t.ids = append(t.ids, id)
	return e
}

// Entry returns the entry for id, or nil if absent.
func (t *EditTable) Entry(id string) *Entry {
	if t == nil {
		return nil
	}
	return t.entries[id]
}

// IDs returns entry identifiers in first-appearance order.
func (t *EditTable) IDs() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.ids...)
}

// Entries returns the entries in first-appearance order.
func (t *EditTable) Entries() []*Entry {
	if t == nil {
		return nil
	}
	result := make([]*Entry, 0, len(t.ids))
	for _, id := range t.ids {
		result = append(result, t.entries[id])
	}
	return result
}

// Len returns the number of entries.
func (t *EditTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}
