package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console writes to explicit output streams instead of process-wide
// defaults, so callers can capture or redirect everything it emits.
type Console struct {
	stdout  io.Writer
	stderr  io.Writer
	noColor bool
}

type ConsoleOption func(*Console)

func NewConsole(opts ...ConsoleOption) *Console {
	c := &Console{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithStdout(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.stdout = w
	}
}

func WithStderr(w io.Writer) ConsoleOption {
	return func(c *Console) {
		c.stderr = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(c *Console) {
		c.noColor = nc
	}
}

// Print writes text to standard output exactly as given: no trailing
// newline is added, and the stream is flushed immediately so partial lines
// (progress output) appear without delay.
func (c *Console) Print(text string) {
	fmt.Fprint(c.stdout, text)
	flush(c.stdout)
}

func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

func (c *Console) Println(text string) {
	c.Print(text + "\n")
}

// Eprint writes text to standard error exactly as given, flushing after the
// write like Print.
func (c *Console) Eprint(text string) {
	fmt.Fprint(c.stderr, text)
	flush(c.stderr)
}

func (c *Console) Eprintf(format string, args ...any) {
	c.Eprint(fmt.Sprintf(format, args...))
}

func (c *Console) Warnf(format string, args ...any) {
	yellow := c.sprintf(color.FgYellow)
	c.Eprint(yellow("Warning:") + " " + fmt.Sprintf(format, args...) + "\n")
}

func (c *Console) Error(err error) {
	red := c.sprintf(color.FgRed)
	c.Eprint(red("Error:") + " " + err.Error() + "\n")
}

// Debug prints a highlighted DEBUG header followed by the data block, for
// verbose diagnostics such as per-layer configuration dumps.
func (c *Console) Debug(title, data string) {
	header := c.sprintf(color.BgWhite, color.FgBlack, color.Bold)
	body := c.sprintf(color.FgHiBlack)
	c.Print(header("DEBUG: "+title) + "\n")
	c.Print(body(data) + "\n")
}

func (c *Console) sprintf(attrs ...color.Attribute) func(a ...any) string {
	col := color.New(attrs...)
	if c.noColor {
		col.DisableColor()
	}
	return col.SprintFunc()
}

// flush pushes buffered writers through after each write. Plain *os.File
// streams are unbuffered in Go and need no action.
func flush(w io.Writer) {
	if f, ok := w.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
}
