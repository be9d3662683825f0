package main

import (
	"flag"
	"log"
	"log/slog"
	"runtime"

	"github.com/trispin/trispin/lib/config"
	"github.com/trispin/trispin/lib/demo"
	tlog "github.com/trispin/trispin/lib/log"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file (built-in defaults when empty)")
	logLevel := flag.String("log-level", "", "Log level, overrides log_level from the config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Parse(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := tlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	tlog.Setup(level)

	err = demo.Run(cfg)
	if err != nil {
		slog.Error(err.Error(), slog.String("module", "main"))
		log.Fatal("exiting")
	}
}
