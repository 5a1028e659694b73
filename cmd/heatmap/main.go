// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the heatmap command.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/wneessen/heatmap/internal/config"
	"github.com/wneessen/heatmap/internal/i18n"
	"github.com/wneessen/heatmap/internal/logger"
	"github.com/wneessen/heatmap/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGABRT, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	// Environment overrides may be kept in a .env file
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error("failed to load .env file", logger.Err(err))
		os.Exit(1)
	}

	confRead := false
	confPath := flag.String("config", "", "path to the config file")
	format := flag.String("format", "", "output format (svg, png, text, json, yaml)")
	outPath := flag.String("out", "", `output path, "-" writes to stdout`)
	dataFile := flag.String("file", "", "read the dataset from a local JSON file")
	once := flag.Bool("once", false, "render once and exit, ignoring refresh intervals")
	flag.Parse()

	// Read default config
	conf, err := config.New()
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		os.Exit(1)
	}

	// If config file was specified, read it
	if *confPath != "" {
		file := filepath.Base(*confPath)
		path := filepath.Dir(*confPath)
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
		confRead = true
	}

	// Check if we have a config file in the default location
	if path, file := findConfigFile(); !confRead && (path != "" && file != "") {
		conf, err = config.NewFromFile(path, file)
		if err != nil {
			log.Error("failed to load config from file", logger.Err(err))
			os.Exit(1)
		}
	}

	// Command line flags take precedence over the config file
	if *format != "" {
		conf.Output.Format = strings.ToLower(*format)
	}
	if *outPath != "" {
		conf.Output.Path = *outPath
	}
	if *dataFile != "" {
		conf.Source.File = *dataFile
	}
	if *once {
		conf.Intervals.Fetch, conf.Intervals.Render = 0, 0
	}
	if err = conf.Validate(); err != nil {
		log.Error("invalid configuration", logger.Err(err))
		os.Exit(1)
	}

	log = logger.New(conf.LogLevel)
	t, err := i18n.New(conf.Locale)
	if err != nil {
		log.Error("failed to initialize localizer", logger.Err(err))
		os.Exit(1)
	}

	// Initialize the service
	serv, err := service.New(conf, log, t)
	if err != nil {
		log.Error("failed to initialize heat map service", logger.Err(err))
		os.Exit(1)
	}

	log.Info(t.Get("starting heat map service"), slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	if err = serv.Run(ctx); err != nil {
		log.Error(t.Get("failed to run heat map service"), logger.Err(err))
		os.Exit(1)
	}
	log.Info(t.Get("shutting down heat map service"))
}

func findConfigFile() (string, string) {
	homedir, err := os.UserHomeDir()
	if err != nil {
		return "", ""
	}
	exts := []string{"toml", "yaml", "yml", "json"}
	for _, ext := range exts {
		path := filepath.Join(homedir, ".config", "heatmap", "config."+ext)
		if _, err = os.Stat(path); err == nil {
			return filepath.Dir(path), filepath.Base(path)
		}
	}
	return "", ""
}
