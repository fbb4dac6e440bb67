package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// LineReader reads a single answer after showing prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks readline when in is a terminal and a plain reader
// otherwise.
func NewLineReader(in *os.File, out io.Writer) (LineReader, error) {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewReadlineReader(in, out)
	}
	return NewPlainReader(in, out), nil
}

// PlainReader reads newline-terminated answers from any io.Reader.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader wraps in and echoes prompts to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{in: bufio.NewReader(in), out: out}
}

func (r *PlainReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%w: input closed", ErrAborted)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *PlainReader) Close() error { return nil }

// ReadlineReader provides line editing on interactive terminals.
type ReadlineReader struct {
	rl *readline.Instance
}

// NewReadlineReader starts a readline instance bound to in and out.
func NewReadlineReader(in io.ReadCloser, out io.Writer) (*ReadlineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		HistoryLimit:    -1,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return nil, fmt.Errorf("start readline: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", fmt.Errorf("%w: interrupted", ErrAborted)
	case errors.Is(err, io.EOF):
		return "", fmt.Errorf("%w: input closed", ErrAborted)
	case err != nil:
		return "", err
	}
	return line, nil
}

func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}
