package prompt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompter asks questions through a LineReader.
type Prompter struct {
	reader LineReader
	out    io.Writer
}

// New returns a prompter reading answers from reader. Notices such as the
// integer fallback message are written to out.
func New(reader LineReader, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{reader: reader, out: out}
}

// NonInteractive returns a prompter that accepts every default. Each
// question and its default answer are still echoed to out.
func NonInteractive(out io.Writer) *Prompter {
	return New(defaultsReader{out: out}, out)
}

// Println writes an informational line, such as a section heading.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) ask(message, shown, kind string) (string, error) {
	line, err := p.reader.ReadLine(fmt.Sprintf("%s (%s) (%s): ", message, shown, kind))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Text returns the answer, or def when the answer is empty.
func (p *Prompter) Text(message, def string) (string, error) {
	answer, err := p.ask(message, def, "string")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// OptionalText is Text for values that may be absent. An empty default is
// shown as "none"; typing "none" clears a non-empty default.
func (p *Prompter) OptionalText(message, def string) (string, error) {
	shown := def
	if shown == "" {
		shown = "none"
	}
	answer, err := p.ask(message, shown, "string")
	if err != nil {
		return "", err
	}
	switch {
	case answer == "":
		return def, nil
	case strings.EqualFold(answer, "none"):
		return "", nil
	default:
		return answer, nil
	}
}

// YesNo accepts y/yes/n/no in any case. Anything else is an InputError.
func (p *Prompter) YesNo(message string, def bool) (bool, error) {
	answer, err := p.ask(message, formatBool(def), "Y,n")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, &InputError{Prompt: message, Input: answer, Reason: "please choose y/n"}
	}
}

// Int parses a base-10 integer. Unparseable input falls back to def.
func (p *Prompter) Int(message string, def int) (int, error) {
	answer, err := p.ask(message, strconv.Itoa(def), "int")
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return def, nil
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(p.out, "int decode fail for %q, using default value of %d\n", answer, def)
		return def, nil
	}
	return n, nil
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// defaultsReader answers every prompt with an empty line.
type defaultsReader struct {
	out io.Writer
}

func (r defaultsReader) ReadLine(prompt string) (string, error) {
	if r.out != nil {
		fmt.Fprintln(r.out, prompt)
	}
	return "", nil
}

func (defaultsReader) Close() error { return nil }
