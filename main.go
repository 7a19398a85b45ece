package main

import (
	"fmt"
	"os"

	"burrow/browser"
	"burrow/config"
	"burrow/fetch"
	"burrow/help"
	"burrow/history"
	"burrow/input"
	"burrow/render"
	"burrow/theme"
)

func main() {
	url := ""
	initConfig := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--init-config":
			initConfig = true
		case "-h", "--help":
			printUsage()
			return
		default:
			if url == "" {
				url = arg
			}
		}
	}

	// Generate default config and exit
	if initConfig {
		fmt.Print(config.DefaultTOML())
		return
	}

	if err := run(url); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`burrow - Terminal Gopher Client

Usage: burrow [options] [url]

Options:
  --init-config     Output default config (redirect to ~/.config/burrow/config.toml)
  -h, --help        Show this help

Examples:
  burrow                                Open the built-in help menu
  burrow gopher.floodgap.com            Open a gopher server
  burrow gopher://sdf.org/1/users       Open a full locator
  burrow --init-config > ~/.config/burrow/config.toml

Configuration:
  Config file: ~/.config/burrow/config.toml
  Generate with: burrow --init-config > ~/.config/burrow/config.toml`)
}

func run(url string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	th := theme.Default()
	if cfg.Display.Theme == "mono" {
		th = theme.Mono()
	}

	b := browser.New(th)
	engine := fetch.New(os.Stdout, cfg.Downloads.Dir)
	b.Fetch = engine.Fetch
	b.Download = engine.Download
	b.OpenExternal = browser.OpenInHandler
	b.Clipboard = browser.CopyToClipboard

	// A missing config dir disables persistence for the session, it
	// never blocks startup.
	if dir, err := history.Dir(); err == nil {
		b.History = history.OpenLog(dir)
		if marks, err := history.OpenBookmarks(dir); err == nil {
			b.Bookmarks = marks
		}
	}

	startText := url
	if startText == "" {
		startText = cfg.Start.URL
	}

	term, err := render.NewTerminal(os.Stdin)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	if err := term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.RestoreMode()

	render.EnterAltScreen(os.Stdout)
	defer render.ExitAltScreen(os.Stdout)

	if startText != "" {
		b.OpenText(startText)
	} else {
		b.Open(help.Home())
	}
	runErr := b.Run(input.NewReader(os.Stdin), os.Stdout)

	if b.History != nil {
		if err := b.History.Save(); err != nil && runErr == nil {
			runErr = err
		}
	}
	return runErr
}
