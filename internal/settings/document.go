package settings

import (
	"bytes"
	"fmt"
	"os"
	"strings"
)

// Assignment is a single `KEY = value [# comment]` line.
type Assignment struct {
	Indent  string
	Key     string
	Raw     string
	Gap     string // whitespace between the value and Comment
	Comment string
}

// Render rebuilds the line with the given literal in place of Raw. The
// spacing before a trailing comment is kept as written.
func (a Assignment) Render(literal string) string {
	line := a.Indent + a.Key + " = " + literal
	if a.Comment != "" {
		line += a.Gap + a.Comment
	}
	return line
}

// Document is the parsed view of a settings file. Keys keeps first-appearance
// order; Values holds the last assignment seen for each key.
type Document struct {
	Keys   []string
	Values map[string]Value
}

// Get returns the value assigned to key.
func (d *Document) Get(key string) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	v, ok := d.Values[key]
	return v, ok
}

// Parse decodes settings content. Lines that are not assignments are ignored.
func Parse(content []byte) (*Document, error) {
	return parse("", content)
}

// ParseFile reads and decodes the settings file at path.
func ParseFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(path, 0, "file does not exist")
		}
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	return parse(path, content)
}

func parse(path string, content []byte) (*Document, error) {
	doc := &Document{Values: make(map[string]Value)}
	for i, line := range bytes.Split(content, []byte("\n")) {
		assign, ok := SplitAssignment(strings.TrimSuffix(string(line), "\r"))
		if !ok {
			continue
		}
		value, err := ParseLiteral(assign.Raw)
		if err != nil {
			return nil, &Error{Path: path, Line: i + 1, Err: err}
		}
		if _, seen := doc.Values[assign.Key]; !seen {
			doc.Keys = append(doc.Keys, assign.Key)
		}
		doc.Values[assign.Key] = value
	}
	return doc, nil
}

// SplitAssignment recognizes `KEY = value [# comment]`. Blank lines, comment
// lines, and anything without an identifier on the left of '=' are rejected.
func SplitAssignment(line string) (Assignment, bool) {
	body := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(body)]
	if body == "" || body[0] == '#' {
		return Assignment{}, false
	}

	eq := strings.IndexByte(body, '=')
	if eq <= 0 {
		return Assignment{}, false
	}
	key := strings.TrimRight(body[:eq], " \t")
	if !isKey(key) {
		return Assignment{}, false
	}

	rest := strings.TrimLeft(body[eq+1:], " \t")
	valueEnd := scanValue(rest)
	raw := strings.TrimRight(rest[:valueEnd], " \t")
	if raw == "" {
		return Assignment{}, false
	}
	comment := strings.TrimSpace(rest[valueEnd:])
	var gap string
	if comment != "" {
		gap = rest[len(raw):valueEnd]
	}

	return Assignment{Indent: indent, Key: key, Raw: raw, Gap: gap, Comment: comment}, true
}

// scanValue returns the offset where the value ends and a trailing comment
// (if any) begins. A '#' inside a quoted string does not start a comment.
func scanValue(s string) int {
	i := 0
	if i < len(s) && (s[i] == '\'' || s[i] == '"') {
		q := s[i]
		i++
		for i < len(s) && s[i] != q {
			if q == '"' && s[i] == '\\' {
				i++
			}
			i++
		}
		if i < len(s) {
			i++
		}
	}
	if hash := strings.IndexByte(s[min(i, len(s)):], '#'); hash >= 0 {
		return i + hash
	}
	return len(s)
}

func isKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '.' || r == '-'):
		default:
			return false
		}
	}
	return true
}
