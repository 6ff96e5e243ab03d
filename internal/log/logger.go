package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger provides centralized logging for the filter and its commands
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	file   *os.File
}

var globalLogger *Logger

// init creates the global logger writing to stderr, so stdout stays reserved
// for the rewritten guide
func init() {
	globalLogger = newLogger(os.Stderr, nil)
}

func newLogger(w io.Writer, file *os.File) *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)
	if globalLogger != nil {
		level.Set(globalLogger.level.Level())
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && file == nil {
				// Terminal output does not need timestamps
				return slog.Attr{}
			}
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		file:   file,
	}
}

// SetOutput redirects the global logger to w
func SetOutput(w io.Writer) {
	Close()
	globalLogger = newLogger(w, nil)
}

// SetFileOutput configures the logger to append to the specified file
func SetFileOutput(filename string) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	Close()
	globalLogger = newLogger(file, file)
	return nil
}

// SetLevel sets the minimum level: debug, info, warn or error
func SetLevel(name string) {
	var lvl slog.Level
	switch strings.ToLower(name) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	globalLogger.level.Set(lvl)
}

// Standard logging methods
func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file, if any
func Close() {
	if globalLogger != nil && globalLogger.file != nil {
		globalLogger.file.Close()
		globalLogger.file = nil
	}
}
