package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes the desired logging configuration.
type Config struct {
	Level    string `json:"level"`
	Format   string `json:"format"`
	FilePath string `json:"file_path,omitempty"`
}

// Rotation limits for the optional log file.
const (
	fileMaxSizeMB  = 10
	fileMaxFiles   = 3
	fileMaxAgeDays = 30
)

// Manager owns the logger lifecycle and the log file writer, if any.
type Manager struct {
	config Config
	mu     sync.Mutex
	closer io.Closer
}

// NewManager creates a Manager and returns it along with a ready-to-use
// logger. Records go to console (stderr when nil) and, when FilePath is
// set, to a size-rotated file as well. Stdout is left to progress output.
func NewManager(cfg Config, console io.Writer) (*Manager, *slog.Logger) {
	if console == nil {
		console = os.Stderr
	}

	writer, closer := buildWriter(cfg, console)
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.Format == "text" {
		h = slog.NewTextHandler(writer, opts)
	} else {
		h = slog.NewJSONHandler(writer, opts)
	}

	return &Manager{config: cfg, closer: closer}, slog.New(h)
}

// Config returns the configuration the manager was built with.
func (m *Manager) Config() Config {
	return m.config
}

// Close releases the log file writer. Safe to call more than once.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closer != nil {
		err := m.closer.Close()
		m.closer = nil
		return err
	}
	return nil
}

// ForRun tags every record of one generation run with a fresh run id so
// interleaved runs sharing a log file can be told apart.
func ForRun(logger *slog.Logger) *slog.Logger {
	return logger.With(slog.String("run", uuid.NewString()))
}

// parseLevel converts a string to slog.Level, defaulting to Info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func buildWriter(cfg Config, console io.Writer) (io.Writer, io.Closer) {
	if cfg.FilePath == "" {
		return console, nil
	}

	lj := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    fileMaxSizeMB,
		MaxBackups: fileMaxFiles,
		MaxAge:     fileMaxAgeDays,
	}
	return io.MultiWriter(console, lj), lj
}

// String returns a human-readable summary of the config.
func (c Config) String() string {
	s := fmt.Sprintf("level=%s format=%s", c.Level, c.Format)
	if c.FilePath != "" {
		s += " file=" + c.FilePath
	}
	return s
}
