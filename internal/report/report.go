// Package report provides the leveled reporter used throughout shlint.
// Every message is written twice: a color-coded, timestamped line on the
// console, and a plain structured record appended to the log file.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
)

// timeFormat is the console timestamp layout.
const timeFormat = "2006-01-02 15:04:05"

// defaultLogPath is where the log file lives unless SHLINT_LOG overrides it.
const defaultLogPath = "/var/log/shlint.log"

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	fatalColor = color.New(color.FgRed, color.Bold)
)

// Reporter emits leveled messages to a console writer and mirrors them to
// a log writer via slog. Writes are serialized so lines stay whole and
// timestamps stay ordered.
type Reporter struct {
	mu      sync.Mutex
	console io.Writer
	log     *slog.Logger
	file    *os.File
	exit    func(int)
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithExit replaces the function called by Fatalf. The default is os.Exit.
func WithExit(fn func(int)) Option {
	return func(r *Reporter) { r.exit = fn }
}

// New creates a Reporter writing console lines to console and structured
// records to logw.
func New(console, logw io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		console: console,
		log:     slog.New(slog.NewTextHandler(logw, &slog.HandlerOptions{Level: slog.LevelInfo})),
		exit:    os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open creates a Reporter backed by the log file at LogPath.
// When the file cannot be opened for appending, the reporter falls back to
// a file of the same name in the OS temp dir, and finally to console-only
// operation. Ownership of the log file is adjusted to the effective
// user/group on a best-effort basis.
func Open(console io.Writer, opts ...Option) *Reporter {
	path := LogPath()
	f, err := openLogFile(path)
	if err != nil {
		f, err = openLogFile(filepath.Join(os.TempDir(), filepath.Base(path)))
	}

	var logw io.Writer = io.Discard
	if err == nil {
		logw = f
	}

	r := New(console, logw, opts...)
	r.file = f
	return r
}

// LogPath returns the log file location: $SHLINT_LOG when set, otherwise
// the fixed default.
func LogPath() string {
	if p := os.Getenv("SHLINT_LOG"); p != "" {
		return p
	}
	return defaultLogPath
}

func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	// Best effort: the original setup chowns the log to the invoking user.
	_ = os.Chown(path, os.Getuid(), os.Getgid())
	return f, nil
}

// Close releases the log file, if one is open.
func (r *Reporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Infof reports an informational message.
func (r *Reporter) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.emit(infoColor, "INFO", msg)
	r.log.Info(msg)
}

// Warnf reports a non-fatal warning.
func (r *Reporter) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.emit(warnColor, "WARN", msg)
	r.log.Warn(msg)
}

// Errorf reports an error without terminating the run.
func (r *Reporter) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.emit(errorColor, "ERROR", msg)
	r.log.Error(msg)
}

// Fatalf reports an error and terminates the process with exit code 1.
func (r *Reporter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.emit(fatalColor, "FATAL", msg)
	r.log.Error(msg, slog.Bool("fatal", true))
	r.exit(1)
}

// emit writes one console line. Flushes synchronously: *os.File writers
// are unbuffered, so the line is on disk/terminal when emit returns.
func (r *Reporter) emit(c *color.Color, level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.console, "%s %s %s\n",
		time.Now().Format(timeFormat), c.Sprintf("%-5s", level), msg)
}
