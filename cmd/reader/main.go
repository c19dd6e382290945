package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pitchside/config"
	"pitchside/contentapi"
	"pitchside/history"
	"pitchside/loader"
	"pitchside/preferences"
	"pitchside/query"
	"pitchside/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	useRedis := flag.Bool("redis", false, "Store preferences and read history in Redis instead of memory")
	logFile := flag.String("log", "", "Write logs to this file (discarded if empty)")
	flag.Parse()

	// Logs would corrupt the alt screen
	log.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "pitchside")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store preferences.Store = preferences.NewMemoryStore()
	var tracker history.Tracker = history.NewMemoryTracker()
	if *useRedis {
		rs, err := preferences.NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			fmt.Printf("Error connecting to Redis: %v\n", err)
			os.Exit(1)
		}
		defer rs.Close()
		store = rs

		rt, err := history.NewRedisTracker(ctx, cfg.Redis)
		if err != nil {
			fmt.Printf("Error connecting to Redis: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()
		tracker = rt
	}

	client := contentapi.NewClient(contentapi.WithLogger(log.Default()))
	l := loader.New(query.NewBuilder(cfg.API), store, client)

	m := tui.NewModel(ctx, tui.Options{
		Loader:  l,
		Store:   store,
		Host:    cfg.API.Host(),
		History: tracker,
	})

	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
