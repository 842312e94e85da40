package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type flushRecorder struct {
	bytes.Buffer
	flushes int
}

func (f *flushRecorder) Flush() error {
	f.flushes++
	return nil
}

func TestConsolePrintNoTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(WithStdout(&out), WithNoColor(true))

	c.Print("converging")
	c.Print(".")
	c.Print(".")

	assert.Equal(t, "converging..", out.String())
}

func TestConsoleStreamsAreSeparate(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewConsole(WithStdout(&out), WithStderr(&errOut), WithNoColor(true))

	c.Print("to stdout")
	c.Eprint("to stderr")

	assert.Equal(t, "to stdout", out.String())
	assert.Equal(t, "to stderr", errOut.String())
}

func TestConsoleFlushesAfterEveryWrite(t *testing.T) {
	rec := &flushRecorder{}
	c := NewConsole(WithStdout(rec), WithNoColor(true))

	c.Print("one")
	c.Printf("%s", "two")
	c.Println("three")

	assert.Equal(t, "onetwothree\n", rec.Buffer.String())
	assert.Equal(t, 3, rec.flushes)
}

func TestConsolePrintf(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(WithStdout(&out), WithNoColor(true))

	c.Printf("Created: %s\n", "rolespec.yaml")

	assert.Equal(t, "Created: rolespec.yaml\n", out.String())
}

func TestConsoleError(t *testing.T) {
	var errOut bytes.Buffer
	c := NewConsole(WithStderr(&errOut), WithNoColor(true))

	c.Error(errors.New("merge conflict at \"x.y\""))

	assert.Equal(t, "Error: merge conflict at \"x.y\"\n", errOut.String())
}

func TestConsoleWarnf(t *testing.T) {
	var errOut bytes.Buffer
	c := NewConsole(WithStderr(&errOut), WithNoColor(true))

	c.Warnf("layer %s is empty", "user.yaml")

	assert.Equal(t, "Warning: layer user.yaml is empty\n", errOut.String())
}

func TestConsoleDebug(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(WithStdout(&out), WithNoColor(true))

	c.Debug("effective config", "role: nginx")

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "DEBUG: effective config", lines[0])
	assert.Equal(t, "role: nginx", lines[1])
}
