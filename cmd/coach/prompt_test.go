package main

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPromptDeadline fails the test instead of hanging when a prompt helper
// keeps retrying on input that can never yield another line.
func withPromptDeadline(t *testing.T, run func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		run()
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("prompt helper did not return on exhausted input")
	}
}

func TestPromptLine(t *testing.T) {
	var out bytes.Buffer

	line, err := promptLine(bufio.NewReader(strings.NewReader("  hello \n")), &out, "name: ")
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	assert.Equal(t, "name: ", out.String())

	// final line without a trailing newline is still accepted
	line, err = promptLine(bufio.NewReader(strings.NewReader("last")), &out, "name: ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = promptLine(bufio.NewReader(strings.NewReader("")), &out, "name: ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptNumber_RetriesThenAccepts(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("abc\n-5\n42\n"))

	v, err := promptNumber(in, &out, "minutes: ", func(v float64) bool { return v > 0 })
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
	assert.Contains(t, out.String(), "Please enter a valid number.")
}

func TestPromptNumber_StopsOnExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	withPromptDeadline(t, func() {
		_, err := promptNumber(bufio.NewReader(strings.NewReader("")), &out,
			"minutes: ", func(v float64) bool { return v > 0 })
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptNumber_StopsWhenOnlyInvalidInput(t *testing.T) {
	var out bytes.Buffer
	withPromptDeadline(t, func() {
		_, err := promptNumber(bufio.NewReader(strings.NewReader("abc\n")), &out,
			"minutes: ", func(v float64) bool { return v > 0 })
		assert.ErrorIs(t, err, io.EOF)
	})
}

func TestPromptChoice(t *testing.T) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader("leisure\nPRODUCTION\n"))

	choice, err := promptChoice(in, &out, "type: ", "production", "consumption")
	require.NoError(t, err)
	assert.Equal(t, "production", choice)
	assert.Contains(t, out.String(), "Must be one of: production, consumption")
}

func TestPromptChoice_StopsOnExhaustedInput(t *testing.T) {
	var out bytes.Buffer
	withPromptDeadline(t, func() {
		_, err := promptChoice(bufio.NewReader(strings.NewReader("nope\n")), &out,
			"type: ", "production", "consumption")
		assert.ErrorIs(t, err, io.EOF)
	})
}
