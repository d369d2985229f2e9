// Copyright 2025 The t9serve Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the keypad prediction server and its CLI [DBG] mode.

t9serve learns words from a plain text word list and predicts them from
phone keypad digits (2=abc, 3=def, ... 9=wxyz). Every prefix of every learned
word is kept under its digit sequence, most recently typed first, so typing
2-7-7 offers "app" or "arr" depending on which word was typed last.

# Usage

Start the server with the default word list:

	t9serve

Use a custom word list or a directory of *.txt lists, with debug logging:

	t9serve -dict /path/to/words.txt -d

Run in CLI mode for interactive testing:

	t9serve -c -limit 5

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first
run under ~/.config/t9serve/config.toml unless -config points elsewhere:

	[server]
	max_limit = 64
	max_keys = 32
	reload_every = 200

	[dict]
	path = "words.txt"
	fold_case = true
	max_words = 0

	[cli]
	default_limit = 10

Server mode re-reads the file every reload_every requests.

# IPC Protocol

The server speaks MessagePack over stdin/stdout, see package server.

	{"id": "r1", "k": "277", "l": 5}
	{"id": "r1", "s": [{"f": "app", "r": 1, "w": false}], "c": 1, "t": 4}

# Command Line Flags

	-dict string
	    Word list file or directory (default from config)
	-config string
	    Path to a custom config file
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of candidates to show (default from config)
	-fold
	    Case fold words while loading (default from config)
	-words int
	    Maximum words to load (0 for all)
	-version
	    Show current version

Word list problems are logged and never fatal: the dictionary keeps whatever
was read and starts empty when nothing could be loaded.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/t9serve/internal/cli"
	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/bastiangx/t9serve/pkg/config"
	"github.com/bastiangx/t9serve/pkg/dictionary"
	"github.com/bastiangx/t9serve/pkg/server"
	"github.com/bastiangx/t9serve/pkg/t9"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "t9serve"
	gh      = "https://github.com/bastiangx/t9serve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary loading and the chosen front end.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Word list file or directory of *.txt lists (default from config)")
	configFile := flag.String("config", "", "Path to custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, "Number of candidates to show (default from config)")
	foldCase := flag.Bool("fold", defaultConfig.Dict.FoldCase, "Case fold words while loading")
	wordLimit := flag.Int("words", -1, "Maximum number of words to load (use 0 for all words)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	if *debugMode {
		for k, v := range pathResolver.GetRuntimeInfo() {
			log.Debug("runtime", k, v)
		}
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if configPath == "" {
		// the default location was not usable, try the fallback dirs
		if fallback, err := pathResolver.GetConfigPath("config.toml"); err == nil {
			if cfg, err := config.InitConfig(fallback); err == nil {
				appConfig, configPath = cfg, fallback
			}
		}
	}
	log.Debugf("Using config file: (%s)", configPath)

	// flags override the config file only when given
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dict":
			appConfig.Dict.Path = *dictPath
		case "fold":
			appConfig.Dict.FoldCase = *foldCase
		case "words":
			appConfig.Dict.MaxWords = *wordLimit
		case "limit":
			appConfig.CLI.DefaultLimit = *limit
		}
	})

	dict := t9.New()
	resolvedDict := loadWords(dict, pathResolver.GetDictPath(appConfig.Dict.Path), appConfig.Dict)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", appConfig.CLI.DefaultLimit, "words", dict.Len())

		inputHandler := cli.NewInputHandler(dict, appConfig.CLI.DefaultLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, appConfig, configPath)

	showStartupInfo(resolvedDict, dict.Stats())

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadWords fills dict from path, a file or a directory. Failures are logged
// and the dictionary keeps whatever was read before them.
func loadWords(dict *t9.Dictionary, path string, cfg config.DictConfig) string {
	if path == "" {
		log.Warn("No word list specified, running with empty dict...")
		return ""
	}
	loader := dictionary.NewLoader(dict, dictionary.Options{FoldCase: cfg.FoldCase, MaxWords: cfg.MaxWords})

	var stats dictionary.LoadStats
	var err error
	if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
		stats, err = loader.LoadDir(path)
	} else {
		stats, err = loader.LoadFile(path)
	}

	switch {
	case errors.Is(err, dictionary.ErrSourceUnavailable):
		log.Errorf("Word list unavailable, starting with an empty dict: %v", err)
	case err != nil:
		log.Errorf("Word list partially loaded (%s words): %v", utils.FormatWithCommas(stats.Inserted), err)
	default:
		log.Debug("Word list loaded",
			"path", path,
			"inserted", stats.Inserted,
			"rejected", stats.Rejected,
			"took", stats.Elapsed)
	}
	return path
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ t9serve ] Keypad word predictions, most recent first")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
// stdout carries the IPC stream, so all of it goes to stderr.
func showStartupInfo(dictPath string, stats map[string]int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "  t9serve  ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("word list: ( %s )", utils.GetAbsolutePath(dictPath))
	log.Infof("words: %s, nodes: %s",
		utils.FormatWithCommas(stats["distinctWords"]),
		utils.FormatWithCommas(stats["nodes"]))
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
