// Komorebi is a day-by-day life game over Lua-authored content, with
// versioned binary save files.
// Usage: komorebi [--version] [--plain] [--config <file>] [content_directory]
package main

import (
	"fmt"
	"log/slog"
	"os"

	"komorebi/cli"
	"komorebi/config"
	"komorebi/engine"
	"komorebi/engine/save"
	"komorebi/loader"
	"komorebi/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var configFile string
	var contentDir string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("komorebi %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		default:
			if contentDir == "" {
				contentDir = args[i]
			}
		}
	}

	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	// The positional argument wins over the config file.
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(log)

	cat, err := loader.Load(cfg.ContentDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	g := engine.New(cat, save.NewStore(cfg.SaveDir, log))

	// Use the plain CLI if --plain is set or stdout is not a terminal.
	if plain || !isTerminal() {
		cli.New(g).Run()
		return
	}

	if err := tui.Run(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
