package settings

import "testing"

func TestValueLiteral(t *testing.T) {
	cases := []struct {
		name  string
		value Value
		want  string
	}{
		{"text", String("red"), "'red'"},
		{"empty text", String(""), "''"},
		{"text with hash", String("a # b"), "'a # b'"},
		{"text with single quote", String("it's"), `"it's"`},
		{"text with newline", String("a\nb"), `"a\nb"`},
		{"text with backslash and quote", String(`c:\it's`), `"c:\\it's"`},
		{"integer", Int(2048), "2048"},
		{"negative integer", Int(-1), "-1"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"null", Null(), "null"},
		{"zero value", Value{}, "null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.Literal(); got != tc.want {
				t.Fatalf("Literal() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseLiteral(t *testing.T) {
	cases := []struct {
		raw  string
		want Value
	}{
		{"'blue'", String("blue")},
		{`"say \"hi\""`, String(`say "hi"`)},
		{"'~/gitmarks'", String("~/gitmarks")},
		{"1024", Int(1024)},
		{"true", Bool(true)},
		{"false", Bool(false)},
		{"null", Null()},
		{"  7  ", Int(7)},
	}
	for _, tc := range cases {
		got, err := ParseLiteral(tc.raw)
		if err != nil {
			t.Fatalf("ParseLiteral(%q) error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLiteral(%q) = %#v, want %#v", tc.raw, got, tc.want)
		}
	}
}

func TestParseLiteralRejectsUnsupported(t *testing.T) {
	for _, raw := range []string{"", "1.5", "[1, 2]", "'unterminated", "None", "yes"} {
		if _, err := ParseLiteral(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestLiteralRoundTripsThroughParse(t *testing.T) {
	for _, v := range []Value{String("it's a \"test\"\t"), String("plain"), Int(0), Bool(true), Null()} {
		got, err := ParseLiteral(v.Literal())
		if err != nil {
			t.Fatalf("ParseLiteral(%s): %v", v.Literal(), err)
		}
		if got != v {
			t.Fatalf("round trip mismatch: got %#v want %#v", got, v)
		}
	}
}

func TestOptionalString(t *testing.T) {
	if !OptionalString("  ").IsNull() {
		t.Fatal("expected blank text to map to null")
	}
	if s, ok := OptionalString("git@host:repo.git").Str(); !ok || s != "git@host:repo.git" {
		t.Fatalf("unexpected value %q %v", s, ok)
	}
}
