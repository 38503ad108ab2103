package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// LogLevel represents logging verbosity levels.
type LogLevel int

// Log level constants.
const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelDebug
)

// ParseLogLevel parses a log level string. Unknown values map to error.
func ParseLogLevel(s string) LogLevel {
	level, _ := parseLogLevel(s)
	return level
}

func parseLogLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return LogLevelOff, true
	case "error":
		return LogLevelError, true
	case "debug":
		return LogLevelDebug, true
	default:
		return LogLevelError, false
	}
}

// String returns the string representation of a log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelOff:
		return "off"
	case LogLevelError:
		return "error"
	case LogLevelDebug:
		return "debug"
	default:
		return "error"
	}
}

// Logger writes leveled zerolog events to a file or writer.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	file     *os.File
	filePath string
	out      *zerolog.Logger
}

// NewLogger creates a JSON logger appending to filePath.
func NewLogger(level LogLevel, filePath string) (*Logger, error) {
	return NewFormatLogger(level, filePath, FormatJSON)
}

// NewFormatLogger creates a logger appending to filePath in the given format.
// Nothing is opened when the level is off or the path is empty.
func NewFormatLogger(level LogLevel, filePath, format string) (*Logger, error) {
	logger := &Logger{
		level:    level,
		filePath: filePath,
	}

	if level == LogLevelOff || filePath == "" {
		return logger, nil
	}

	// Expand home directory
	if strings.HasPrefix(filePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		filePath = filepath.Join(home, filePath[2:])
	}

	// Ensure directory exists
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}

	// #nosec G304 -- log file path is from validated config
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	logger.file = f
	logger.filePath = filePath
	logger.out = newZerolog(f, format)

	return logger, nil
}

// NewWriterLogger creates a logger writing to w.
func NewWriterLogger(w io.Writer, level LogLevel, format string) *Logger {
	return &Logger{
		level: level,
		out:   newZerolog(w, format),
	}
}

// NewLoggerFromConfig creates a logger from the logging section of a config.
func NewLoggerFromConfig(cfg LoggingConfig) (*Logger, error) {
	return NewFormatLogger(ParseLogLevel(cfg.Level), cfg.File, cfg.Format)
}

func newZerolog(w io.Writer, format string) *zerolog.Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    true,
		}
	}
	zl := zerolog.New(w).With().Timestamp().Str("component", "seedphrase").Logger()
	return &zl
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.out = nil
		return err
	}
	return nil
}

// SetLevel changes the log level.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// FilePath returns the resolved log file path, if any.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...any) {
	l.DebugEvent().Msgf(format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.ErrorEvent().Msgf(format, args...)
}

// DebugEvent starts a structured debug event. It returns nil, which zerolog
// treats as a no-op, when debug logging is disabled.
func (l *Logger) DebugEvent() *zerolog.Event {
	return l.event(LogLevelDebug)
}

// ErrorEvent starts a structured error event, or returns nil when disabled.
func (l *Logger) ErrorEvent() *zerolog.Event {
	return l.event(LogLevelError)
}

// Writer returns an io.Writer that writes to the logger at the specified level.
func (l *Logger) Writer(level LogLevel) io.Writer {
	return &logWriter{logger: l, level: level}
}

func (l *Logger) event(level LogLevel) *zerolog.Event {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.level == LogLevelOff || level > l.level || l.out == nil {
		return nil
	}

	if level == LogLevelDebug {
		return l.out.Debug()
	}
	return l.out.Error()
}

// logWriter implements io.Writer for the logger.
type logWriter struct {
	logger *Logger
	level  LogLevel
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.logger.event(w.level).Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

// NullLogger returns a logger that discards all output.
func NullLogger() *Logger {
	return &Logger{level: LogLevelOff}
}
