// Package output handles CLI output formatting including verbose mode and styled errors.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"changejane/internal/config"
)

// errorColor is bright red in the 16-color palette.
const errorColor = lipgloss.Color("9")

// Config holds output configuration.
type Config struct {
	Verbose   bool             // Enable verbose output
	ColorMode config.ColorMode // auto, always or never (default: auto)
	Writer    io.Writer        // Output destination (default: os.Stdout)
	ErrWriter io.Writer        // Error output destination (default: os.Stderr)
	IsTTY     bool             // Whether error output is a terminal
}

// Output handles formatted output with verbose support.
type Output struct {
	config     Config
	errorStyle lipgloss.Style
	mu         sync.Mutex
}

// New creates a new Output instance with the given configuration.
func New(cfg Config) *Output {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.ErrWriter == nil {
		cfg.ErrWriter = os.Stderr
	}
	if cfg.ColorMode == "" {
		cfg.ColorMode = config.ColorAuto
	}
	return &Output{
		config:     cfg,
		errorStyle: newErrorStyle(cfg),
	}
}

// DefaultConfig returns a Config with sensible defaults and TTY detection.
func DefaultConfig() Config {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))
	return Config{
		Verbose:   false,
		ColorMode: config.ColorAuto,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		IsTTY:     isTTY,
	}
}

// newErrorStyle builds the style for the "Error:" prefix. In auto mode a
// terminal keeps the renderer's own profile detection, which honors NO_COLOR.
func newErrorStyle(cfg Config) lipgloss.Style {
	renderer := lipgloss.NewRenderer(cfg.ErrWriter)
	switch {
	case cfg.ColorMode == config.ColorAlways:
		renderer.SetColorProfile(termenv.ANSI)
	case cfg.ColorMode == config.ColorNever, !cfg.IsTTY:
		renderer.SetColorProfile(termenv.Ascii)
	}
	return renderer.NewStyle().Foreground(errorColor).Bold(true)
}

// Verbose prints a message only when verbose mode is enabled.
func (o *Output) Verbose(format string, args ...interface{}) {
	if !o.config.Verbose {
		return
	}
	o.write(o.config.Writer, fmt.Sprintf(format, args...))
}

// Error prints a plain message to stderr.
func (o *Output) Error(format string, args ...interface{}) {
	o.write(o.config.ErrWriter, fmt.Sprintf(format, args...))
}

// Fail prints err to stderr behind a styled "Error:" prefix.
func (o *Output) Fail(err error) {
	o.write(o.config.ErrWriter, o.errorStyle.Render("Error:")+" "+err.Error())
}

func (o *Output) write(w io.Writer, msg string) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprint(w, msg)
}
