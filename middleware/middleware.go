// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
)

var ErrNotANumber = errors.New("not a number")

// HandlerFunc runs one menu command against the console.
// Only I/O failures are returned; domain errors are printed.
type HandlerFunc func(c *Console) error

// palette holds the console's own colors so enabling or disabling them
// never touches color.NoColor
type palette struct {
	err       *color.Color
	success   *color.Color
	heading   *color.Color
	highlight *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:       color.New(color.FgRed),
		success:   color.New(color.FgGreen),
		heading:   color.New(color.Bold),
		highlight: color.New(color.FgGreen, color.Bold),
	}
	for _, col := range []*color.Color{p.err, p.success, p.heading, p.highlight} {
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	return p
}

// Console reads line-oriented input and writes output for the shell
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool
	colors      palette
}

// NewConsole creates a console. interactive enables the pause after each
// command and should only be set when r is a terminal. Colors follow
// color.NoColor until SetColor is called.
func NewConsole(r io.Reader, w io.Writer, interactive bool) *Console {
	return &Console{
		in:          bufio.NewScanner(r),
		out:         w,
		interactive: interactive,
		colors:      newPalette(!color.NoColor),
	}
}

func (c *Console) Interactive() bool { return c.interactive }

// SetColor turns colored output on or off for this console only
func (c *Console) SetColor(enabled bool) {
	c.colors = newPalette(enabled)
}

// Write makes the console usable as an io.Writer
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Prompt prints label and returns the next input line without surrounding
// whitespace. It returns io.EOF once input is exhausted.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// PromptInt reads an integer. Non-numeric input returns ErrNotANumber.
func (c *Console) PromptInt(label string) (int, error) {
	line, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, line)
	}
	return n, nil
}

// Pause waits for Enter on interactive consoles
func (c *Console) Pause() error {
	if !c.interactive {
		return nil
	}
	_, err := c.Prompt("\nPress Enter to continue...")
	return err
}

// WithLogging wraps a handler with command logging
func WithLogging(name string, next HandlerFunc) HandlerFunc {
	return func(c *Console) error {
		start := time.Now()

		slog.Info("command started", "command", name)

		err := next(c)

		duration := time.Since(start)
		if err != nil && !errors.Is(err, io.EOF) {
			slog.Error("command failed",
				"command", name,
				"error", err,
				"duration_ms", duration.Milliseconds(),
			)
			return err
		}
		slog.Info("command completed",
			"command", name,
			"duration_ms", duration.Milliseconds(),
		)
		return err
	}
}

// JSONResponse writes data as indented JSON
func JSONResponse(c *Console, data any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON output", "error", err)
		return err
	}
	return nil
}

// Heading prints a section title
func Heading(c *Console, title string) {
	c.colors.heading.Fprintf(c.out, "\n-- %s --\n", strings.ToUpper(title))
}

// ErrorMessage prints an error line
func ErrorMessage(c *Console, message string) {
	c.colors.err.Fprintf(c.out, "Error: %s\n", message)
}

// ErrorResponse prints err as an error line
func ErrorResponse(c *Console, err error) {
	ErrorMessage(c, err.Error())
}

// SuccessMessage prints a confirmation line
func SuccessMessage(c *Console, format string, args ...any) {
	c.colors.success.Fprintf(c.out, format+"\n", args...)
}

// Highlight prints a line that must stand out, such as the winner
func Highlight(c *Console, format string, args ...any) {
	c.colors.highlight.Fprintf(c.out, format+"\n", args...)
}
