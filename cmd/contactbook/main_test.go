package main

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/cristianoliveira/contactbook/internal/colors"
	"github.com/stretchr/testify/assert"
)

func captureStructured(t *testing.T) *bytes.Buffer {
	t.Helper()
	var errOut bytes.Buffer
	colors.SetOutput(nil, &errOut)
	colors.SetDebug(true)
	colors.EnableStructuredLogging()
	t.Cleanup(func() {
		colors.SetDebug(false)
		colors.SetOutput(nil, os.Stderr)
	})
	return &errOut
}

func TestRunNonTUILogsStartupAndCompletion(t *testing.T) {
	output := captureStructured(t)

	exitCode := run([]string{"list"}, func() error { return nil })

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, output.String(), `"component":"startup"`)
	assert.Contains(t, output.String(), `"status":"started"`)
	assert.Contains(t, output.String(), `"status":"completed"`)
}

func TestRunNonTUILogsFailure(t *testing.T) {
	output := captureStructured(t)

	exitCode := run([]string{"list"}, func() error { return errors.New("boom") })

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, output.String(), `"status":"failed"`)
	assert.Contains(t, output.String(), `"error":"boom"`)
}

func TestRunTUISkipsStartupStructuredLogs(t *testing.T) {
	output := captureStructured(t)

	exitCode := run([]string{"tui"}, func() error { return errors.New("no tty") })

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, output.String())
}
