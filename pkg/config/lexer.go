// Package config implements the FortiOS configuration parser and data model.
package config

import (
	"fmt"
	"strings"
)

// Keyword identifies the statement type of one configuration line.
type Keyword int

const (
	KeywordConfig Keyword = iota // config <name...>
	KeywordEdit                  // edit <id>
	KeywordSet                   // set <key> <values...>
	KeywordUnset                 // unset <key>
	KeywordNext                  // next
	KeywordEnd                   // end
	KeywordUnknown               // anything else, passed through
)

func (k Keyword) String() string {
	switch k {
	case KeywordConfig:
		return "config"
	case KeywordEdit:
		return "edit"
	case KeywordSet:
		return "set"
	case KeywordUnset:
		return "unset"
	case KeywordNext:
		return "next"
	case KeywordEnd:
		return "end"
	case KeywordUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// Statement is one classified configuration line.
type Statement struct {
	Keyword Keyword
	Word    string // the keyword token as written (meaningful for KeywordUnknown)
	RawArgs string // remainder of the line, trimmed
	Line    int
	Raw     string // original line text, for diagnostics
}

func (s Statement) String() string {
	if s.RawArgs == "" {
		return s.Word
	}
	return fmt.Sprintf("%s %s", s.Word, s.RawArgs)
}

// ClassifyLine classifies one raw line. It returns ok=false for blank lines
// and full-line comments (first non-whitespace character is '#').
//
// Only the first token is inspected; a '#' later in the line is data, not a
// comment, so quoted values containing '#' are never misclassified.
func ClassifyLine(line string, lineno int) (Statement, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Statement{}, false
	}

	word := trimmed
	rawArgs := ""
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		word = trimmed[:i]
		rawArgs = strings.TrimSpace(trimmed[i+1:])
	}

	st := Statement{
		Word:    word,
		RawArgs: rawArgs,
		Line:    lineno,
		Raw:     line,
	}

	switch word {
	case "config":
		st.Keyword = KeywordConfig
	case "edit":
		st.Keyword = KeywordEdit
	case "set":
		st.Keyword = KeywordSet
	case "unset":
		st.Keyword = KeywordUnset
	case "next":
		st.Keyword = KeywordNext
	case "end":
		st.Keyword = KeywordEnd
	default:
		st.Keyword = KeywordUnknown
	}
	return st, true
}

// SplitValues splits the argument portion of a set/unset/edit statement into
// value tokens. Outside quotes whitespace separates tokens; a double-quoted
// span (including embedded whitespace) becomes exactly one token with the
// surrounding quotes stripped. Inside quotes, \" and \\ escape the quote and
// backslash; any other backslash sequence is kept verbatim.
//
// Tokens are returned as written: no type coercion, so an address/mask pair
// stays two string tokens.
func SplitValues(rawArgs string) ([]string, error) {
	var tokens []string
	var b strings.Builder
	inQuote := false
	inToken := false

	for i := 0; i < len(rawArgs); i++ {
		ch := rawArgs[i]

		if inQuote {
			if ch == '\\' && i+1 < len(rawArgs) {
				switch rawArgs[i+1] {
				case '"':
					b.WriteByte('"')
				case '\\':
					b.WriteByte('\\')
				default:
					b.WriteByte('\\')
					b.WriteByte(rawArgs[i+1])
				}
				i++
				continue
			}
			if ch == '"' {
				inQuote = false
				continue
			}
			b.WriteByte(ch)
			continue
		}

		switch ch {
		case ' ', '\t':
			if inToken {
				tokens = append(tokens, b.String())
				b.Reset()
				inToken = false
			}
		case '"':
			inQuote = true
			inToken = true
		default:
			inToken = true
			b.WriteByte(ch)
		}
	}

	if inQuote {
		return nil, ErrUnterminatedQuote
	}
	if inToken {
		tokens = append(tokens, b.String())
	}
	return tokens, nil
}
