// Package console is the stdin/stdout presentation boundary: it reads the
// player's menu choices and renders combat events as coloured text.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/arena/internal/game/encounter"
)

// Console reads lines from in and writes text to out.
//
// Console is not safe for concurrent use.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

// New creates a Console. When color is false every ANSI sequence is stripped
// before writing.
//
// Precondition: in and out must be non-nil.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{in: bufio.NewReader(in), out: out, color: color}
}

// Println writes text followed by a newline.
func (c *Console) Println(text string) {
	if !c.color {
		text = StripANSI(text)
	}
	fmt.Fprintln(c.out, text)
}

// Print writes text without a trailing newline.
func (c *Console) Print(text string) {
	if !c.color {
		text = StripANSI(text)
	}
	fmt.Fprint(c.out, text)
}

// ReadLine reads one line with surrounding whitespace removed.
//
// Postcondition: returns io.EOF only when no bytes remain; a final
// unterminated line is returned without error.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Ask writes question as a prompt and returns the answer line.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	c.Print(Colorize(BrightWhite, question))
	return c.ReadLine(ctx)
}

// Choose implements encounter.Prompter. It prints the title and numbered
// options and reads one line. Non-numeric input is returned as 0.
func (c *Console) Choose(ctx context.Context, p encounter.Prompt) (int, error) {
	c.Println(Colorize(BrightWhite, p.Title))
	for _, o := range p.Options {
		c.Println(fmt.Sprintf("%s%d.%s %s", BrightCyan, o.Number, Reset, o.Label))
	}
	line, err := c.Ask(ctx, "Choice: ")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, nil
	}
	return n, nil
}
