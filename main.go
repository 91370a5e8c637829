package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"kymera/internal/config"
	"kymera/internal/dashboard"
	"kymera/internal/logger"
	"kymera/internal/output"
	"kymera/internal/version"
	"kymera/ui/console"
	"kymera/ui/tui"

	"go.uber.org/zap"
)

func main() {
	var (
		cfgPath     = flag.String("config", "", "path to a YAML config file")
		once        = flag.Bool("once", false, "print a single dashboard snapshot and exit")
		tabName     = flag.String("tab", string(dashboard.TabOverview), "emphasised tab for -once")
		debugFlag   = flag.Bool("debug", false, "enable debug logging")
		showVer     = flag.Bool("version", false, "print version information")
		noMouse     = flag.Bool("no-mouse", false, "disable mouse support")
		noAltScreen = flag.Bool("no-altscreen", false, "render inline instead of full screen")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info())
		return
	}

	if *once {
		tab, err := dashboard.ParseTab(*tabName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		console.Print(os.Stdout, output.BuildDashboard(), tab, time.Now())
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg = cfg.WithLogLevel("debug")
	}
	if *noMouse {
		cfg = cfg.WithMouse(false)
	}
	if *noAltScreen {
		cfg = cfg.WithAltScreen(false)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting kymera",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("log_level", cfg.Log.Level),
	)

	if err := tui.Start(cfg.UI, log); err != nil {
		log.Error("dashboard exited with error", zap.Error(err))
		_ = log.Sync()
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
	log.Info("bye")
}
