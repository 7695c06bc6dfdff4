// Copyright 2025 The SpellServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spelling correction server and CLI [DBG]
application.

SpellServe provides fast spelling correction using symmetric delete
lookup with frequency ranking, plus Patricia trie prefix completion.
It can operate as a MessagePack IPC server for integration with text
editors, or as a CLI application for testing and debugging.

Dictionaries are plain "term count" text files or prebuilt binary
chunks named dict_0001.bin, dict_0002.bin, etc. Every loaded term
feeds both the correction index and the completion trie.

# Usage

Start the server with a frequency dictionary:

	spellserve -dict frequency_dictionary_en.txt

Use prebuilt binary chunks and enable debug mode:

	spellserve -data /path/to/chunks -d

Run in CLI mode for interactive testing:

	spellserve -dict words.txt -c -limit 10 -verbosity closest

# Configuration

Runtime configuration is managed through a TOML file that supports
engine parameters, server limits, and CLI defaults:

	[spell]
	max_edit_distance = 2
	prefix_length = 7
	count_threshold = 1

	[server]
	default_limit = 16
	max_input = 60

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests
are processed synchronously with microsecond timing information
included in responses.

Send a correction request:

	{"id": "req1", "cmd": "correct", "t": "recieve", "v": "top"}

Receive suggestions ordered by edit distance and frequency:

	{"id": "req1", "s": [{"t": "receive", "d": 1, "c": 83712}], "n": 1, "us": 92}

Completion requests use {"cmd": "complete", "p": "rec", "l": 10} and
health checks {"cmd": "health"}.

# Command Line Flags

The following flags control application behavior:

	-dict string
	    Path to a "term count" frequency dictionary text file
	-data string
	    Directory containing binary chunk files
	-config string
	    Path to a custom config.toml
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of suggestions to return (default from config)
	-distance int
	    Maximum edit distance for corrections
	-verbosity string
	    Correction verbosity: top, closest or all
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/spellserve/internal/cli"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/server"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "spellserve"
	gh      = "https://github.com/bastiangx/spellserve"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to a frequency dictionary text file")
	binaryDir := flag.String("data", "", "Directory containing the binary chunk files")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to return")
	distance := flag.Int("distance", defaultConfig.Spell.MaxEditDistance, "Maximum edit distance for corrections")
	verbosity := flag.String("verbosity", defaultConfig.CLI.DefaultVerbosity, "Correction verbosity: top, closest or all")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *distance != defaultConfig.Spell.MaxEditDistance {
		appConfig.Spell.MaxEditDistance = *distance
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	corrector := spell.New(
		spell.WithMaxEditDistance(appConfig.Spell.MaxEditDistance),
		spell.WithPrefixLength(appConfig.Spell.PrefixLength),
		spell.WithCountThreshold(appConfig.Spell.CountThreshold),
	)
	completer := suggest.NewCompleter()

	// every dictionary record feeds both engines
	loader := dictionary.NewLoader(dictionary.SinkFunc(func(term string, count uint64) bool {
		completer.AddEntry(term, count)
		return corrector.AddEntry(term, count)
	}))

	switch {
	case *dictPath != "":
		loaded, err := loader.LoadFile(*dictPath, 0, 1, "")
		if err != nil {
			log.Fatalf("Failed to load dictionary %s: %v", *dictPath, err)
		}
		log.Debugf("Loaded %d terms from %s", loaded, *dictPath)
	case *binaryDir != "":
		loaded, err := loader.LoadChunks(*binaryDir)
		if err != nil {
			log.Fatalf("Failed to load chunks from %s: %v", *binaryDir, err)
		}
		log.Debugf("Loaded %d terms from chunks in %s", loaded, *binaryDir)
	default:
		log.Warn("No dictionary specified, running with empty vocabulary...")
	}

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"verbosity", *verbosity,
			"limit", *limit,
			"maxInput", appConfig.Server.MaxInput)

		inputHandler := cli.NewInputHandler(corrector, completer, spell.ParseVerbosity(*verbosity), *limit, appConfig.Server.MaxInput)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(corrector, completer, appConfig)

	showStartupInfo(corrector.WordCount())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// showVersionInfo prints the styled version banner.
func showVersionInfo() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["version"] = lipgloss.NewStyle().
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ SpellServe ] Serves really Fast spelling corrections!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(wordCount int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("============")
	println(" SpellServe ")
	println("============")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("vocabulary: [ %d words ]", wordCount)
	log.Info("status: ready")
	println("============")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
