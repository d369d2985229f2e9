/*
Package dictionary feeds word lists into a keypad dictionary.

A word list is plain text with one word per line. Blank lines and lines
starting with '#' are ignored. Words are inserted in file order, so for words
sharing a prefix the later ones end up ranked first.

	loader := dictionary.NewLoader(dict, dictionary.Options{FoldCase: true})
	stats, err := loader.LoadFile("words.txt")

A word list may also be split into several files inside one directory; LoadDir
loads every *.txt file in lexical order.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/t9serve/internal/logger"
	"github.com/bastiangx/t9serve/internal/utils"
	"github.com/bastiangx/t9serve/pkg/keypad"
	"github.com/charmbracelet/log"
	"golang.org/x/text/cases"
)

var (
	// ErrSourceUnavailable is returned when a word list cannot be opened.
	ErrSourceUnavailable = errors.New("word list unavailable")
	// ErrSourceRead is returned when reading a word list fails part way.
	ErrSourceRead = errors.New("word list read error")
)

// Inserter is the part of a dictionary the loader needs.
type Inserter interface {
	Insert(word string) error
}

// Options control how lines become words.
type Options struct {
	// FoldCase lowercases every line before inserting it.
	FoldCase bool
	// MaxWords stops loading after that many inserted words, 0 means no limit.
	MaxWords int
}

// LoadStats describes one load.
type LoadStats struct {
	Lines    int
	Inserted int
	// Skipped counts blank and comment lines.
	Skipped int
	// Rejected counts words with characters that have no key.
	Rejected int
	Elapsed  time.Duration
}

func (s *LoadStats) add(o LoadStats) {
	s.Lines += o.Lines
	s.Inserted += o.Inserted
	s.Skipped += o.Skipped
	s.Rejected += o.Rejected
	s.Elapsed += o.Elapsed
}

// Loader pushes word lists through an Inserter.
type Loader struct {
	dict   Inserter
	opts   Options
	folder cases.Caser
	log    *log.Logger
}

// NewLoader creates a loader for dict.
func NewLoader(dict Inserter, opts Options) *Loader {
	return &Loader{
		dict:   dict,
		opts:   opts,
		folder: cases.Fold(),
		log:    logger.New("loader"),
	}
}

// LoadFile loads the word list at path.
func (l *Loader) LoadFile(path string) (LoadStats, error) {
	if err := ValidateFileFormat(path); err != nil {
		return LoadStats{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return LoadStats{}, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, path, err)
	}
	defer file.Close()
	return l.LoadReader(file, path)
}

// LoadDir loads every *.txt word list in dir, in lexical order. It stops at
// the first file that fails and returns the totals so far.
func (l *Loader) LoadDir(dir string) (LoadStats, error) {
	var total LoadStats
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return total, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, dir, err)
	}
	if len(files) == 0 {
		return total, fmt.Errorf("%w: no word lists in %s", ErrSourceUnavailable, dir)
	}
	sort.Strings(files)

	for _, file := range files {
		if l.limitReached(total.Inserted) {
			break
		}
		sub := *l
		if l.opts.MaxWords > 0 {
			sub.opts.MaxWords = l.opts.MaxWords - total.Inserted
		}
		stats, err := sub.LoadFile(file)
		total.add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// LoadReader loads words from r. name is only used in messages.
func (l *Loader) LoadReader(r io.Reader, name string) (stats LoadStats, err error) {
	start := time.Now()
	defer func() {
		stats.Elapsed = time.Since(start)
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l.limitReached(stats.Inserted) {
			l.log.Debugf("Word limit %d reached in %s", l.opts.MaxWords, name)
			break
		}
		stats.Lines++

		word := strings.TrimSpace(scanner.Text())
		if utils.IsSkippableLine(word) {
			stats.Skipped++
			continue
		}
		if l.opts.FoldCase {
			word = l.folder.String(word)
		}

		if insertErr := l.dict.Insert(word); insertErr != nil {
			if errors.Is(insertErr, keypad.ErrUnknownCharacter) {
				stats.Rejected++
				l.log.Debugf("Skipping line %d of %s: %v", stats.Lines, name, insertErr)
				continue
			}
			return stats, fmt.Errorf("insert %q from %s line %d: %w", word, name, stats.Lines, insertErr)
		}
		stats.Inserted++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return stats, fmt.Errorf("%w: %s after %d lines: %w", ErrSourceRead, name, stats.Lines, scanErr)
	}

	if stats.Rejected > 0 {
		l.log.Warnf("%s: %d words had characters with no key and were skipped", name, stats.Rejected)
	}
	l.log.Debugf("Loaded %s: %d words from %d lines", name, stats.Inserted, stats.Lines)
	return stats, nil
}

func (l *Loader) limitReached(inserted int) bool {
	return l.opts.MaxWords > 0 && inserted >= l.opts.MaxWords
}
