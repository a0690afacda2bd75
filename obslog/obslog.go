package obslog

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is one of zerolog's level names ("debug", "info", "warn",
	// "error"); an unrecognized value falls back to info.
	Level string
	// LogDir is the directory holding the rotating log file. Created if
	// missing.
	LogDir string
	// Component names the subsystem this logger belongs to (e.g. "cli",
	// "httpapi", "montecarlo"), attached to every log line.
	Component string
}

// New builds a component logger writing to both a TTY-aware console sink
// and a rotating file sink under opts.LogDir.
func New(opts Options) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	isTerminal := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	console := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isTerminal,
	}

	if opts.LogDir != "" {
		if err := os.MkdirAll(opts.LogDir, 0o755); err != nil {
			return zerolog.Logger{}, err
		}
	}

	var writers []io.Writer
	writers = append(writers, console)
	if opts.LogDir != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(opts.LogDir, "spert-scheduler.log"),
			MaxSize:    16,
			MaxBackups: 8,
			MaxAge:     90,
			Compress:   true,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("component", opts.Component).
		Logger()
	return logger, nil
}
