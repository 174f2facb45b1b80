// Package main is the entry point for the showdeck browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/mkrell/showdeck/internal/app"
	"github.com/mkrell/showdeck/internal/library"
	"github.com/mkrell/showdeck/internal/log"
	renderterm "github.com/mkrell/showdeck/internal/render/term"
	"github.com/mkrell/showdeck/internal/theme"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	themePath := flag.String("theme", "", "path to a theme file (TOML or JSON)")
	debug := flag.Bool("debug", false, "enable debug logging to stderr")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("showdeck %s (%s)\n", version, commit)
		return 0
	}
	if *debug {
		log.SetLevel(log.LevelDebug)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: showdeck requires a terminal")
		return 1
	}

	th, err := theme.Load(*themePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := renderterm.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Restore the terminal on SIGINT/SIGTERM before exiting.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Fini()
		os.Exit(1)
	}()

	browser := app.New(th, library.Demo())
	if err := browser.Run(screen); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
