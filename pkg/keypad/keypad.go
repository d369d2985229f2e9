// Package keypad holds the fixed letter to key table of a classic phone keypad
// and helpers to move between words, key strings and digit sequences.
package keypad

import (
	"errors"
	"fmt"
	"strings"
)

// Digit is a single key press. Keys 2 to 9 carry letters, 0 and 1 carry none.
type Digit int8

// NoDigit marks the root of a keystroke trie.
const NoDigit Digit = -1

const (
	MinDigit Digit = 2
	MaxDigit Digit = 9
	// KeyCount is the number of keys that carry letters.
	KeyCount = int(MaxDigit-MinDigit) + 1
)

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrInvalidKey       = errors.New("invalid key")
)

// UnknownCharacterError reports a character with no key on the keypad.
type UnknownCharacterError struct {
	Word string
	Char rune
	Pos  int
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("%s %q at position %d in %q", ErrUnknownCharacter, e.Char, e.Pos, e.Word)
}

// Is makes errors.Is(err, ErrUnknownCharacter) hold.
func (e *UnknownCharacterError) Is(target error) bool {
	return target == ErrUnknownCharacter
}

var layout = [KeyCount]string{
	"abc",  // 2
	"def",  // 3
	"ghi",  // 4
	"jkl",  // 5
	"mno",  // 6
	"pqrs", // 7
	"tuv",  // 8
	"wxyz", // 9
}

// letterDigits is indexed by letter - 'a'.
var letterDigits = func() (t [26]Digit) {
	for i, letters := range layout {
		for _, r := range letters {
			t[r-'a'] = MinDigit + Digit(i)
		}
	}
	return t
}()

// Valid reports whether d is a key that carries letters.
func (d Digit) Valid() bool {
	return d >= MinDigit && d <= MaxDigit
}

func (d Digit) String() string {
	if d == NoDigit {
		return "-1"
	}
	return string(rune('0' + d))
}

// DigitOf returns the key for a lowercase ASCII letter.
func DigitOf(r rune) (Digit, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return letterDigits[r-'a'], true
}

// Letters returns the letters printed on key d, or "" for keys without letters.
func Letters(d Digit) string {
	if !d.Valid() {
		return ""
	}
	return layout[d-MinDigit]
}

// Encode converts a word into the key sequence that types it.
// The whole word is checked before anything is returned.
func Encode(word string) ([]Digit, error) {
	keys := make([]Digit, 0, len(word))
	for i, r := range word {
		d, ok := DigitOf(r)
		if !ok {
			return nil, &UnknownCharacterError{Word: word, Char: r, Pos: i}
		}
		keys = append(keys, d)
	}
	return keys, nil
}

// ParseKeys parses a key string such as "2775".
func ParseKeys(s string) ([]Digit, error) {
	keys := make([]Digit, 0, len(s))
	for i, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidKey, r, i)
		}
		keys = append(keys, Digit(r-'0'))
	}
	return keys, nil
}

// FormatKeys is the inverse of ParseKeys.
func FormatKeys(keys []Digit) string {
	var b strings.Builder
	b.Grow(len(keys))
	for _, d := range keys {
		b.WriteString(d.String())
	}
	return b.String()
}
