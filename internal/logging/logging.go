package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where logs go. Transcripts are written elsewhere, so
// nothing here ever touches stdout.
type Options struct {
	File       string // empty disables the file sink
	Level      slog.Level
	MaxSizeMB  int       // rotate after this many megabytes, default 1
	MaxBackups int       // rotated files to keep, default 3
	Console    io.Writer // default os.Stderr
}

// Setup builds a JSONL logger over the console and the rotating log file.
// The returned cleanup closes the file.
func Setup(opts Options) (*slog.Logger, func(), error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	if opts.File == "" {
		return newLogger(console, opts.Level), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    orDefault(opts.MaxSizeMB, 1),
		MaxBackups: orDefault(opts.MaxBackups, 3),
	}

	logger := newLogger(io.MultiWriter(console, rotator), opts.Level)
	cleanup := func() {
		_ = rotator.Close()
	}
	return logger, cleanup, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
