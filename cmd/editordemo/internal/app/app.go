// Package app wires editordemo's flags, config, logger and the
// bubbletea adapter together, separated from main so Run can be called
// without going through cobra. Run itself starts an alt-screen bubbletea
// program and so needs a terminal.
package app

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	bubbleadapter "github.com/embedx/lineeditor/adapter-bubbletea"
	core "github.com/embedx/lineeditor/core"
	"github.com/embedx/lineeditor/internal/config"
)

// Options are the resolved command-line flags Run needs.
type Options struct {
	File       string
	ConfigPath string
	Spaces     int
	Rows       int
	LogPath    string
	Debug      bool
}

// Run loads the config, builds the adapter's Model over File's
// contents, and drives a bubbletea program until the user quits,
// writing the edited buffer back to File.
func Run(opts Options) error {
	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	mode, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Spaces > 0 {
		mode.Spaces = opts.Spaces
	}
	if opts.Rows > 0 {
		mode.ViewportRows = opts.Rows
	}

	text := ""
	if opts.File != "" {
		content, err := os.ReadFile(opts.File)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", opts.File, err)
		}
		text = string(content)
	}

	m := bubbleadapter.New(text, mode, 80, mode.ViewportRows+2, logger)

	program := tea.NewProgram(&m, tea.WithAltScreen())
	logger.Info().Str("file", opts.File).Msg("starting editor")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if opts.File == "" {
		return nil
	}
	if err := os.WriteFile(opts.File, []byte(m.Editor().Text()), 0644); err != nil {
		return fmt.Errorf("saving %s: %w", opts.File, err)
	}
	logger.Info().Str("file", opts.File).Msg("saved")
	return nil
}

func newLogger(opts Options) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	if opts.LogPath == "" {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
		return logger, func() {}, nil
	}

	file, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return logger, func() { file.Close() }, nil
}
