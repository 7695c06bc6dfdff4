// Package cli handles cmd line input for DBG and testing corrections
// and completions in real time.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/spell"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, printing spelling
// corrections and prefix completions for each entered word.
type InputHandler struct {
	corrector    *spell.Corrector
	completer    *suggest.Completer
	log          *log.Logger
	verbosity    spell.Verbosity
	suggestLimit int
	maxInput     int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(corrector *spell.Corrector, completer *suggest.Completer, verbosity spell.Verbosity, limit, maxInput int) *InputHandler {
	return &InputHandler{
		corrector:    corrector,
		completer:    completer,
		log:          logger.Default("cli"),
		verbosity:    verbosity,
		suggestLimit: limit,
		maxInput:     maxInput,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to the handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin
func (h *InputHandler) Start() error {
	h.log.Print("SpellServe CLI")
	reader := bufio.NewReader(os.Stdin)
	h.log.Print("type a word and press Enter to see corrections and completions (Ctrl+C to exit):")

	for {
		h.log.Print("> ")
		word, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput runs one word through the corrector and the completer
// and prints both result sets.
func (h *InputHandler) handleInput(word string) {
	if len(word) > h.maxInput {
		h.log.Errorf("Input too long: %s", word)
		return
	}
	if !utils.IsValidInput(word) {
		h.log.Warnf("Skipping input: '%s'", word)
		return
	}

	start := time.Now()
	corrections, err := h.corrector.Lookup(word, h.verbosity, spell.TransferCasing())
	if err != nil {
		h.log.Errorf("Lookup failed for '%s': %v", word, err)
		return
	}
	completions := h.completer.Complete(word, h.suggestLimit)
	h.log.Debugf("Took [ %v ] for input '%s'", time.Since(start), word)

	if len(corrections) == 0 {
		h.log.Warnf("No corrections found for '%s'", word)
	} else {
		h.log.Printf("Found %d corrections for '%s':", len(corrections), word)
		for i, s := range corrections {
			clTerm := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Term)
			h.log.Printf("%2d. %-40s (dist: %d, freq: %8s)", i+1, clTerm, s.Distance, utils.FormatCount(int(s.Count)))
		}
	}

	if len(completions) > 0 {
		h.log.Printf("Found %d completions for '%s':", len(completions), word)
		for i, s := range completions {
			clWord := fmt.Sprintf("\033[38;5;114m%s\033[0m", s.Word)
			h.log.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, utils.FormatCount(int(s.Count)))
		}
	}
}
