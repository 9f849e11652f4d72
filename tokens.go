package aoc

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// ErrNoDigits is returned when a line holds no digit token.
var ErrNoDigits = errors.New("no digits in line")

// digitWords is indexed by the value each word spells.
var digitWords = [...]string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

// tokenValue reports the digit that w spells, either as a single ASCII
// digit or as a whole digit word.
func tokenValue(w string) (int, bool) {
	if len(w) == 1 {
		if v, ok := Digit(rune(w[0])); ok {
			return v, true
		}
	}
	for v, word := range digitWords {
		if w == word {
			return v, true
		}
	}
	return 0, false
}

func isWordPrefix(w string) bool {
	for _, word := range digitWords {
		if strings.HasPrefix(word, w) {
			return true
		}
	}
	return false
}

// DigitScanner yields the digit tokens of a line from left to right.
// Tokens may overlap: "twone" yields 2 then 1.
//
// The line is treated as a sequence of bytes; multi-byte runes never
// form a token.
type DigitScanner struct {
	line  string
	start int // offset where the current window begins
}

// NewDigitScanner returns a scanner positioned at the start of line.
func NewDigitScanner(line string) *DigitScanner {
	return &DigitScanner{line: line}
}

// Next returns the next token value. ok is false once the line is
// exhausted, and stays false on later calls.
//
// The window s.line[start:stop] grows one byte at a time while it is a
// prefix of some digit word. On a match, start moves forward by one byte
// (not by the token length) so that overlapping words are all found. On a
// dead prefix, the window restarts at start+1.
func (s *DigitScanner) Next() (int, bool) {
	stop := s.start + 1
	for s.start < len(s.line) && stop <= len(s.line) {
		w := s.line[s.start:stop]
		if v, ok := tokenValue(w); ok {
			s.start++
			return v, true
		}
		if !isWordPrefix(w) {
			s.start++
			stop = s.start
		}
		stop++
	}
	// Either every byte has been tried, or the tail of the line is an
	// unfinished word, which cannot hold another token.
	s.start = len(s.line)
	return 0, false
}

// All returns the remaining tokens as a sequence. The sequence shares
// the scanner's cursor, so it can be consumed only once.
func (s *DigitScanner) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for {
			v, ok := s.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// DigitTokens returns every digit token of line, in order.
func DigitTokens(line string) []int {
	var out []int
	for v := range NewDigitScanner(line).All() {
		out = append(out, v)
	}
	return out
}

// Calibration returns first*10+last over the digit tokens of line, where
// tokens are ASCII digits or spelled-out digit words.
func Calibration(line string) (int, error) {
	first, last := -1, -1
	for v := range NewDigitScanner(line).All() {
		if first < 0 {
			first = v
		}
		last = v
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}

// LiteralCalibration is like Calibration but only ASCII digits count as
// tokens.
func LiteralCalibration(line string) (int, error) {
	first, last := -1, -1
	for _, r := range line {
		v, ok := Digit(r)
		if !ok {
			continue
		}
		if first < 0 {
			first = v
		}
		last = v
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}
