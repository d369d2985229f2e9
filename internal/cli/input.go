// Package cli handles cmd line input for trying the keypad dictionary in a terminal.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/t9serve/internal/logger"
	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/bastiangx/t9serve/pkg/keypad"
	"github.com/bastiangx/t9serve/pkg/t9"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	fragmentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
)

const help = `commands:
  2775      type keys and show the candidates
  :next     select the next candidate for the last keys
  +word     learn a word
  ?prefix   list known words starting with prefix
  :stats    dictionary counters
  :dump     print the whole trie
  :clear    forget the typed keys
  :help     this text`

// InputHandler reads commands from stdin, one per line, and prints
// predictions for typed keys.
type InputHandler struct {
	dict    t9.Predictor
	session *t9.Session
	limit   int
	in      io.Reader
	out     *log.Logger
}

// NewInputHandler creates a handler on stdin and stdout.
func NewInputHandler(dict t9.Predictor, limit int) *InputHandler {
	return NewInputHandlerWithIO(dict, limit, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler reading from in and printing to out.
func NewInputHandlerWithIO(dict t9.Predictor, limit int, in io.Reader, out io.Writer) *InputHandler {
	return &InputHandler{
		dict:    dict,
		session: t9.NewSession(dict),
		limit:   limit,
		in:      in,
		out:     logger.NewWithConfig(out, "", log.InfoLevel, false, false, log.TextFormatter),
	}
}

// Start begins the interface loop. It returns nil once the input ends.
func (h *InputHandler) Start() error {
	h.out.Print("t9serve CLI")
	h.out.Print("type keys and press Enter to see the candidates, :help for commands (Ctrl+C to exit)")

	reader := bufio.NewReader(h.in)
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line != "" {
			h.handleInput(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (h *InputHandler) handleInput(line string) {
	switch {
	case utils.IsKeyString(line):
		h.handleKeys(line)
	case strings.HasPrefix(line, "+"):
		h.handleLearn(strings.TrimSpace(line[1:]))
	case strings.HasPrefix(line, "?"):
		h.handleWords(strings.TrimSpace(line[1:]))
	case line == ":next":
		if next := h.session.Cycle(); next != "" {
			h.out.Printf("selected: %s", h.styled(next))
		} else {
			h.out.Print("nothing to select")
		}
	case line == ":stats":
		h.printStats()
	case line == ":dump":
		if s, ok := h.dict.(fmt.Stringer); ok {
			h.out.Print("\n" + s.String())
		}
	case line == ":clear":
		h.session.Clear()
	case line == ":help":
		h.out.Print(help)
	default:
		h.out.Errorf("Unknown input: %q (try :help)", line)
	}
}

// handleKeys types the keys one by one, as a phone would.
func (h *InputHandler) handleKeys(line string) {
	keys, err := keypad.ParseKeys(line)
	if err != nil {
		h.out.Errorf("Invalid keys: %v", err)
		return
	}

	start := time.Now()
	h.session.Clear()
	var candidates t9.Candidates
	for _, k := range keys {
		candidates = h.session.Press(k)
	}
	log.Debugf("Took [ %v ] for keys '%s'", time.Since(start), line)

	if len(candidates) == 0 {
		h.out.Warnf("No candidates for keys: '%s'", line)
		return
	}
	if h.limit > 0 && len(candidates) > h.limit {
		candidates = candidates[:h.limit]
	}
	h.out.Printf("Found %d candidates for keys '%s':", len(candidates), line)
	for i, c := range candidates {
		h.out.Printf("%2d. %s", i+1, h.styled(c))
	}
}

func (h *InputHandler) handleLearn(word string) {
	if word == "" {
		h.out.Error("Nothing to learn")
		return
	}
	if err := h.session.Confirm(word); err != nil {
		h.out.Errorf("Cannot learn %q: %v", word, err)
		return
	}
	h.out.Printf("learned: %s", word)
}

func (h *InputHandler) handleWords(prefix string) {
	words := h.dict.Words(prefix, h.limit)
	if len(words) == 0 {
		h.out.Warnf("No words start with '%s'", prefix)
		return
	}
	h.out.Printf("%d words:", len(words))
	for _, w := range words {
		h.out.Print("  " + w)
	}
}

func (h *InputHandler) printStats() {
	stats := h.dict.Stats()
	for _, key := range []string{"distinctWords", "insertedWords", "rejectedWords", "nodes", "maxDepth"} {
		h.out.Printf("%-14s %10s", key, utils.FormatWithCommas(stats[key]))
	}
}

// styled marks complete words in bold.
func (h *InputHandler) styled(fragment string) string {
	if isWord, ok := h.dict.(interface{ IsWord(string) bool }); ok && isWord.IsWord(fragment) {
		return wordStyle.Render(fragment) + " *"
	}
	return fragmentStyle.Render(fragment)
}
