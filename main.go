package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// -------------------- Logger --------------------

// logger is the package-wide structured logger. Safe to use before initLogger
// is called; defaults to slog.Default().
var logger = slog.Default()

// initLogger configures the shared slog logger and calls slog.SetDefault so
// the stdlib log package also routes through the same handler.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug, // include file:line in debug mode
	})
	logger = slog.New(h)
	slog.SetDefault(logger) // stdlib log.* now routes through slog
}

// -------------------- Utilities --------------------

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// -------------------- Main --------------------

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML file overriding the built-in defaults")
	list := flag.Bool("list", false, "list available MIDI input ports and exit")
	debug := flag.Bool("debug", false, "enable debug logging (adds source location)")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		logger.Error("config: load failed", "path", *configPath, "err", err)
		return 1
	}
	cfg.Debug = cfg.Debug || *debug
	initLogger(cfg.Debug)

	if err := cfg.Validate(); err != nil {
		logger.Error("config: invalid", "err", err)
		return 1
	}

	input, err := NewInput()
	if err != nil {
		logger.Error("midi: driver init failed", "err", err)
		return 1
	}
	defer input.Close()

	if *list {
		for _, name := range input.Ports() {
			fmt.Println(name)
		}
		return 0
	}

	portName, ok := input.FindPort(cfg.PortPatterns)
	if !ok {
		logger.Error("midi: controller port not found",
			"patterns", strings.Join(cfg.PortPatterns, " "),
			"available", strings.Join(input.Ports(), ", "),
		)
		return 1
	}
	if err := input.Open(portName); err != nil {
		logger.Error("midi: open failed", "device", portName, "err", err)
		return 1
	}

	logger.Info("ardourpad starting",
		"device", portName,
		"window", cfg.WindowTitle,
		"channel", cfg.Channel,
		"repeat_delay_ms", cfg.RepeatDelay.Milliseconds(),
		"repeat_interval_ms", cfg.RepeatInterval.Milliseconds(),
		"debug", cfg.Debug,
	)

	tool := NewXDoTool()
	windows := NewWindowCache(tool, cfg.WindowTitle)
	dispatcher := NewDispatcher(tool, windows)
	repeater := NewRepeater(func(a Action, count int) {
		dispatcher.Send(a, count)
	}, cfg.RepeatDelay, cfg.RepeatInterval)
	defer repeater.StopAll()
	router := NewRouter(cfg, dispatcher, repeater, NewTouchpad(cfg.XSensitivity, cfg.YSensitivity))

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case msg := <-input.Messages():
			router.Handle(msg)
		case err := <-input.Errors():
			logger.Warn("midi: stream closed", "err", err)
			return 0
		case sig := <-sigc:
			logger.Info("shutting down", "signal", sig.String())
			return 0
		}
	}
}
