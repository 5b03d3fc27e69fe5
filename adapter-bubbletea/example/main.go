package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	bubbleadapter "github.com/embedx/lineeditor/adapter-bubbletea"
	core "github.com/embedx/lineeditor/core"
)

func main() {
	file := "example.txt"
	if len(os.Args) > 1 {
		file = os.Args[1]
	}

	text := ""
	if content, err := os.ReadFile(file); err == nil {
		text = string(content)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	m := bubbleadapter.New(text, core.DefaultMode(), 80, 24, logger)

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("error running program: %v", err)
	}

	if err := os.WriteFile(file, []byte(m.Editor().Text()), 0644); err != nil {
		log.Fatalf("error saving %s: %v", file, err)
	}
}
