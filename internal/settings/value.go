package settings

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
)

// Kind identifies the type carried by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "integer"
	case KindBool:
		return "boolean"
	default:
		return "null"
	}
}

// nullLiteral is the bare literal written for absent values.
const nullLiteral = "null"

// Value is a typed settings value: text, integer, boolean, or null.
// The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  int64
	flag bool
}

// String returns a textual Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Null returns the absent Value.
func Null() Value { return Value{} }

// OptionalString maps an empty string to Null and anything else to String.
func OptionalString(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Null()
	}
	return String(s)
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsNull() bool   { return v.kind == KindNull }
func (v Value) IsString() bool { return v.kind == KindString }

// Str returns the text of a string Value and false for any other kind.
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Int64 returns the number of an integer Value and false for any other kind.
func (v Value) Int64() (int64, bool) { return v.num, v.kind == KindInt }

// Boolean returns the flag of a boolean Value and false for any other kind.
func (v Value) Boolean() (bool, bool) { return v.flag, v.kind == KindBool }

// Literal renders the Value as it appears on the right-hand side of an
// assignment. Text is quoted; every other kind is a bare literal.
func (v Value) Literal() string {
	switch v.kind {
	case KindString:
		return quote(v.str)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return nullLiteral
	}
}

// quote prefers a single-quoted literal string and falls back to a
// double-quoted basic string when the text contains a quote or a control
// character.
func quote(s string) string {
	literal := true
	for _, r := range s {
		if r == '\'' || r < 0x20 || r == 0x7f {
			literal = false
			break
		}
	}
	if literal && utf8.ValidString(s) {
		return "'" + s + "'"
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ParseLiteral decodes the right-hand side of an assignment.
func ParseLiteral(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Value{}, fmt.Errorf("empty value")
	}
	if raw == nullLiteral {
		return Null(), nil
	}

	var doc struct {
		V any `toml:"v"`
	}
	if err := toml.Unmarshal([]byte("v = "+raw), &doc); err != nil {
		return Value{}, fmt.Errorf("parse literal %q: %w", raw, err)
	}
	switch typed := doc.V.(type) {
	case string:
		return String(typed), nil
	case int64:
		return Int(typed), nil
	case bool:
		return Bool(typed), nil
	default:
		return Value{}, fmt.Errorf("unsupported literal %q (%T)", raw, doc.V)
	}
}
