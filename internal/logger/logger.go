package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"softmodal/internal/config"
	"softmodal/internal/core"
)

const timeFormat = "2006-01-02 15:04:05"

// Logger writes human readable lines to the console and JSON lines to the
// log file in the install directory.
type Logger struct {
	mu         sync.Mutex
	zl         zerolog.Logger
	path       string
	observerMu sync.RWMutex
	observer   func(string)
}

// New creates a logger bound to the configuration install directory.
func New(cfg *config.Config) *Logger {
	path := ""
	if cfg != nil {
		if err := config.EnsureDir(cfg.InstallDir); err == nil {
			path = filepath.Join(cfg.InstallDir, core.AppLogName)
		}
	}
	return NewWithWriter(os.Stderr, path)
}

// NewWithWriter creates a logger printing to console. An empty path disables
// the log file.
func NewWithWriter(console io.Writer, path string) *Logger {
	l := &Logger{path: path}
	writers := []io.Writer{zerolog.ConsoleWriter{Out: console, NoColor: true, TimeFormat: timeFormat}}
	if path != "" {
		writers = append(writers, &appendFile{path: path, mu: &l.mu})
	}
	l.zl = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger().
		Hook(zerolog.HookFunc(func(_ *zerolog.Event, _ zerolog.Level, message string) {
			l.notify(fmt.Sprintf("[%s] %s", time.Now().Format(timeFormat), message))
		}))
	return l
}

// SetVerbose enables debug events.
func (l *Logger) SetVerbose(verbose bool) {
	if l == nil {
		return
	}
	if verbose {
		l.zl = l.zl.Level(zerolog.DebugLevel)
	} else {
		l.zl = l.zl.Level(zerolog.InfoLevel)
	}
}

// Log writes an informational line.
func (l *Logger) Log(message string) {
	if l == nil || strings.TrimSpace(message) == "" {
		return
	}
	l.zl.Info().Msg(message)
}

// Logf formats according to a format specifier and logs the resulting message.
func (l *Logger) Logf(format string, args ...interface{}) {
	l.Log(fmt.Sprintf(format, args...))
}

// Debug starts a structured debug event. The returned event is nil-safe.
func (l *Logger) Debug() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.zl.Debug()
}

// Warn starts a structured warning event. The returned event is nil-safe.
func (l *Logger) Warn() *zerolog.Event {
	if l == nil {
		return nil
	}
	return l.zl.Warn()
}

// Path returns the log file path, or "" when file logging is disabled.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// SetObserver registers a callback that receives log lines as they are written.
func (l *Logger) SetObserver(fn func(string)) {
	if l == nil {
		return
	}
	l.observerMu.Lock()
	defer l.observerMu.Unlock()
	l.observer = fn
}

func (l *Logger) notify(line string) {
	l.observerMu.RLock()
	observer := l.observer
	l.observerMu.RUnlock()
	if observer != nil {
		observer(line)
	}
}

// appendFile opens the log file for every write. Failures are swallowed so
// logging never interrupts a dialog.
type appendFile struct {
	path string
	mu   *sync.Mutex
}

func (a *appendFile) Write(p []byte) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return len(p), nil
	}
	defer file.Close()
	_, _ = file.Write(p)
	return len(p), nil
}
