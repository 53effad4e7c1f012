// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string, interactive bool) (*Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	c := NewConsole(strings.NewReader(input), out, interactive)
	c.SetColor(false)
	return c, out
}

// captureLogs redirects the default slog logger for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestPrompt(t *testing.T) {
	c, out := newTestConsole("  Alice  \nBob\n", false)

	line, err := c.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", line)

	line, err = c.Prompt("Name: ")
	require.NoError(t, err)
	assert.Equal(t, "Bob", line)

	_, err = c.Prompt("Name: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Name: Name: Name: ", out.String())
}

func TestPromptInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"number", "42\n", 42, nil},
		{"padded", "  7 \n", 7, nil},
		{"negative", "-1\n", -1, nil},
		{"word", "seven\n", 0, ErrNotANumber},
		{"empty line", "\n", 0, ErrNotANumber},
		{"no input", "", 0, io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestConsole(tt.input, false)

			n, err := c.PromptInt("> ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestPause(t *testing.T) {
	t.Run("non-interactive does not consume input", func(t *testing.T) {
		c, out := newTestConsole("next\n", false)

		require.NoError(t, c.Pause())
		assert.Empty(t, out.String())

		line, err := c.Prompt("")
		require.NoError(t, err)
		assert.Equal(t, "next", line)
	})

	t.Run("interactive waits for enter", func(t *testing.T) {
		c, out := newTestConsole("\nnext\n", true)

		require.NoError(t, c.Pause())
		assert.Contains(t, out.String(), "Press Enter to continue...")

		line, err := c.Prompt("")
		require.NoError(t, err)
		assert.Equal(t, "next", line)
	})
}

func TestMessages(t *testing.T) {
	c, out := newTestConsole("", false)

	Heading(c, "Register candidate")
	ErrorMessage(c, "all fields are required")
	ErrorResponse(c, errors.New("duplicate id"))
	SuccessMessage(c, "Candidate %s registered.", "Alice")

	assert.Equal(t,
		"\n-- REGISTER CANDIDATE --\n"+
			"Error: all fields are required\n"+
			"Error: duplicate id\n"+
			"Candidate Alice registered.\n",
		out.String())
}

func TestSetColor(t *testing.T) {
	global := color.NoColor

	plain, plainOut := newTestConsole("", false)
	colored, coloredOut := newTestConsole("", false)
	colored.SetColor(true)

	ErrorMessage(colored, "duplicate id")
	Highlight(colored, "WINNER: %s", "Alice")
	ErrorMessage(plain, "duplicate id")
	Highlight(plain, "WINNER: %s", "Alice")

	assert.Contains(t, coloredOut.String(), "\x1b[31m")
	assert.Contains(t, coloredOut.String(), "WINNER: Alice")
	assert.Equal(t, "Error: duplicate id\nWINNER: Alice\n", plainOut.String())

	// Consoles never flip the package-wide switch
	assert.Equal(t, global, color.NoColor)
}

func TestJSONResponse(t *testing.T) {
	c, out := newTestConsole("", false)

	require.NoError(t, JSONResponse(c, map[string]int{"total_votes": 3}))
	assert.Equal(t, "{\n  \"total_votes\": 3\n}\n", out.String())
}

func TestWithLogging(t *testing.T) {
	logs := captureLogs(t)
	c, _ := newTestConsole("", false)

	called := false
	handler := WithLogging("test_command", func(c *Console) error {
		called = true
		return nil
	})

	require.NoError(t, handler(c))
	assert.True(t, called)
	assert.Contains(t, logs.String(), "command started")
	assert.Contains(t, logs.String(), "command completed")
	assert.Contains(t, logs.String(), "command=test_command")
}

func TestWithLogging_Errors(t *testing.T) {
	logs := captureLogs(t)
	c, _ := newTestConsole("", false)

	boom := errors.New("write failed")
	err := WithLogging("broken", func(c *Console) error { return boom })(c)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, logs.String(), "command failed")

	// EOF ends the shell normally and is not logged as a failure
	logs.Reset()
	err = WithLogging("eof", func(c *Console) error { return io.EOF })(c)
	assert.ErrorIs(t, err, io.EOF)
	assert.NotContains(t, logs.String(), "command failed")
}
