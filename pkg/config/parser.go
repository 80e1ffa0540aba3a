package config

import (
	"fmt"
	"os"
	"strings"
)

// Parser builds a Config tree from FortiOS configuration text.
//
// Parsing is a single synchronous pass: each line is classified, then driven
// through an explicit stack of open scopes. The stack replaces
// recursive-descent call state, so errors can report exactly which scope is
// open and at what depth. A Parser is single-use and not safe for concurrent
// use; parse independent documents with independent parsers.
type Parser struct {
	input string
	stack []scope
}

// scope is one open block on the parser stack: either a config node or an
// edit entry. Exactly one of node/entry is set.
type scope struct {
	node  *Node
	entry *Entry
	line  int // line the scope was opened on, for unclosed-block diagnostics
}

func (s scope) describe() string {
	if s.entry != nil {
		return fmt.Sprintf("edit %q", s.entry.ID)
	}
	return fmt.Sprintf("config %q", s.node.Name)
}

// NewParser creates a Parser for the given configuration text.
func NewParser(input string) *Parser {
	return &Parser{input: input}
}

// ParseText parses a configuration document held in a string.
func ParseText(text string) (*Config, error) {
	return NewParser(text).Parse()
}

// ParseFile reads and parses a configuration file.
func ParseFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return NewParser(string(data)).Parse()
}

// Parse consumes the whole input and returns the configuration tree. The
// first structural error aborts the parse; there is no best-effort mode,
// since a mis-nested tree would silently corrupt every downstream
// extraction.
func (p *Parser) Parse() (*Config, error) {
	cfg := &Config{}

	for lineno, line := range strings.Split(p.input, "\n") {
		st, ok := ClassifyLine(line, lineno+1)
		if !ok {
			continue
		}
		if err := p.apply(cfg, st); err != nil {
			return nil, err
		}
	}

	if len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		return nil, &ParseError{
			Err:  ErrUnclosedBlocks,
			Line: top.line,
			Text: fmt.Sprintf("%d unclosed block(s), innermost is %s", len(p.stack), top.describe()),
		}
	}
	return cfg, nil
}

// apply dispatches one classified statement against the current scope stack.
func (p *Parser) apply(cfg *Config, st Statement) error {
	switch st.Keyword {
	case KeywordConfig:
		return p.openConfig(cfg, st)
	case KeywordEdit:
		return p.openEdit(st)
	case KeywordSet:
		return p.applySet(st)
	case KeywordUnset:
		return p.applyUnset(st)
	case KeywordNext:
		return p.closeEdit(st)
	case KeywordEnd:
		return p.closeConfig(st)
	default:
		// Unrecognized keywords are passed through for forward
		// compatibility with newer FortiOS releases.
		return nil
	}
}

// openConfig opens a config block. A multi-word block name creates one
// nested node per word ("config system interface" is system -> interface),
// but the statement opens a single scope on the innermost node: the matching
// end closes the whole statement. Re-entering an existing path merges into
// the existing nodes.
func (p *Parser) openConfig(cfg *Config, st Statement) error {
	names, err := p.values(st)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return p.malformed(st, "config requires a block name")
	}

	parent := p.currentBody(cfg)
	var node *Node
	for _, name := range names {
		node = parent.child(name)
		parent = &node.body
	}
	p.stack = append(p.stack, scope{node: node, line: st.Line})
	return nil
}

func (p *Parser) openEdit(st Statement) error {
	top := p.top()
	if top == nil || top.node == nil {
		return p.malformed(st, "edit outside a config block")
	}

	ids, err := p.values(st)
	if err != nil {
		return err
	}
	if len(ids) != 1 {
		return p.malformed(st, "edit requires exactly one identifier")
	}

	entry := top.node.editTable().entry(ids[0])
	p.stack = append(p.stack, scope{entry: entry, line: st.Line})
	return nil
}

func (p *Parser) applySet(st Statement) error {
	tokens, err := p.values(st)
	if err != nil {
		return err
	}
	if len(tokens) < 2 {
		return p.malformed(st, "set requires a key and at least one value")
	}

	top := p.top()
	if top == nil {
		return p.malformed(st, "set outside any block")
	}
	p.topBody().set(tokens[0], Value(tokens[1:]))
	return nil
}

func (p *Parser) applyUnset(st Statement) error {
	tokens, err := p.values(st)
	if err != nil {
		return err
	}
	if len(tokens) != 1 {
		return p.malformed(st, "unset requires exactly one key")
	}

	top := p.top()
	if top == nil {
		return p.malformed(st, "unset outside any block")
	}
	p.topBody().unset(tokens[0])
	return nil
}

func (p *Parser) closeEdit(st Statement) error {
	top := p.top()
	if top == nil || top.entry == nil {
		return &ParseError{Err: ErrUnexpectedNext, Line: st.Line, Text: st.Raw}
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *Parser) closeConfig(st Statement) error {
	top := p.top()
	if top == nil || top.node == nil {
		return &ParseError{Err: ErrUnexpectedEnd, Line: st.Line, Text: st.Raw}
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// top returns the current top-of-stack scope, or nil at top level.
func (p *Parser) top() *scope {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

// topBody returns the body of the current scope. Callers must have checked
// the stack is non-empty.
func (p *Parser) topBody() *body {
	top := p.top()
	if top.entry != nil {
		return &top.entry.body
	}
	return &top.node.body
}

// currentBody returns the body new config blocks attach to: the open scope,
// or the root at top level.
func (p *Parser) currentBody(cfg *Config) *body {
	if top := p.top(); top != nil {
		if top.entry != nil {
			return &top.entry.body
		}
		return &top.node.body
	}
	return &cfg.body
}

// values tokenizes a statement's arguments, attaching position info to
// tokenizer errors.
func (p *Parser) values(st Statement) ([]string, error) {
	tokens, err := SplitValues(st.RawArgs)
	if err != nil {
		return nil, &ParseError{Err: err, Line: st.Line, Text: st.Raw}
	}
	return tokens, nil
}

func (p *Parser) malformed(st Statement, reason string) error {
	return &ParseError{
		Err:    ErrMalformedStatement,
		Line:   st.Line,
		Text:   st.Raw,
		Reason: reason,
	}
}
