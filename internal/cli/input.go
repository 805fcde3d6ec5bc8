// Package cli handles the interactive REPL used to exercise the suggestion
// engine from a terminal.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/toolsuggest/pkg/catalog"
	"github.com/charmbracelet/log"
)

// Engine is the subset of *suggest.Engine the REPL drives.
type Engine interface {
	Feed(delta, sessionID string) []catalog.Suggestion
	Submit(text, sessionID string) []catalog.Suggestion
	Reset(sessionID string)
}

// InputHandler reads lines from stdin and feeds them to the engine,
// printing ranked suggestions as they arrive. Each line is submitted as a
// wholesale buffer replacement; ":reset" clears the session and ":feed "
// appends its remainder to the buffer instead.
type InputHandler struct {
	engine       Engine
	sessionID    string
	requestCount int
}

// NewInputHandler builds an InputHandler bound to a single session id.
func NewInputHandler(engine Engine, sessionID string) *InputHandler {
	return &InputHandler{engine: engine, sessionID: sessionID}
}

// Start begins the REPL loop. It reads a line at a time from stdin and
// prints suggestions, until stdin is closed or a read error occurs.
func (h *InputHandler) Start() error {
	log.Print("toolsuggest REPL")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type free text and press Enter for suggestions (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimRight(line, "\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		h.handleLine(line)
	}
}

func (h *InputHandler) handleLine(line string) {
	h.requestCount++

	if line == ":reset" {
		h.engine.Reset(h.sessionID)
		log.Info("session reset")
		return
	}

	start := time.Now()
	var suggestions []catalog.Suggestion
	if rest, ok := strings.CutPrefix(line, ":feed "); ok {
		suggestions = h.engine.Feed(rest, h.sessionID)
		line = rest
	} else {
		suggestions = h.engine.Submit(line, h.sessionID)
	}
	log.Debugf("took [ %v ] for text %q", time.Since(start), line)
	h.printSuggestions(line, suggestions)
}

func (h *InputHandler) printSuggestions(text string, suggestions []catalog.Suggestion) {
	if len(suggestions) == 0 {
		log.Warnf("no suggestions for: %q", text)
		return
	}

	log.Printf("found %d suggestions for %q:", len(suggestions), text)
	for i, s := range suggestions {
		label := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Label)
		log.Printf("%2d. %-30s (score: %6.2f) %s", i+1, label, s.Score, s.Reason)
	}
}
