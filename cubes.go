package aoc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ColorCounts is a handful of cubes: how many of each color were drawn.
// Colors that were not mentioned are zero.
type ColorCounts struct {
	Red, Green, Blue int
}

// DefaultBounds is the bag content used to decide whether a game is
// possible.
var DefaultBounds = ColorCounts{Red: 12, Green: 13, Blue: 14}

func (c ColorCounts) String() string {
	return fmt.Sprintf("(red:%d,green:%d,blue:%d)", c.Red, c.Green, c.Blue)
}

// Power returns red*green*blue.
func (c ColorCounts) Power() int {
	return c.Red * c.Green * c.Blue
}

// Within reports whether no component of c exceeds the same component of
// bounds.
func (c ColorCounts) Within(bounds ColorCounts) bool {
	return c.Red <= bounds.Red && c.Green <= bounds.Green && c.Blue <= bounds.Blue
}

// Game is one parsed "Game N: ..." line.
type Game struct {
	ID   int
	Sets []ColorCounts
}

// Max returns the component-wise maximum over g's sets, which is the
// fewest cubes of each color that make the game possible.
func (g Game) Max() ColorCounts {
	return Fold(g.Sets, func(m, c ColorCounts) ColorCounts {
		return ColorCounts{
			Red:   Max(m.Red, c.Red),
			Green: Max(m.Green, c.Green),
			Blue:  Max(m.Blue, c.Blue),
		}
	}, ColorCounts{})
}

// Possible reports whether every set of g fits within bounds.
func (g Game) Possible(bounds ColorCounts) bool {
	for _, s := range g.Sets {
		if !s.Within(bounds) {
			return false
		}
	}
	return true
}

// ParseError describes a malformed game record.
type ParseError struct {
	Input string // the text being parsed
	Token string // the offending piece of Input
	Msg   string
	Err   error // underlying error, if any
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("%s %q in %q", e.Msg, e.Token, e.Input)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

const gamePrefix = "Game "

// ParseGame parses a line of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, &ParseError{Input: line, Token: line, Msg: "missing colon"}
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), gamePrefix)
	if !ok {
		return Game{}, &ParseError{Input: line, Token: head, Msg: "missing " + strconv.Quote(gamePrefix) + " prefix"}
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return Game{}, &ParseError{Input: line, Token: idStr, Msg: "bad game id", Err: err}
	}
	if id <= 0 {
		return Game{}, &ParseError{Input: line, Token: idStr, Msg: "game id must be positive"}
	}
	g := Game{ID: id}
	for _, set := range strings.Split(body, ";") {
		c, err := ParseColorCounts(set)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Input = line
			}
			return Game{}, err
		}
		g.Sets = append(g.Sets, c)
	}
	return g, nil
}

// ParseColorCounts parses one set, such as "3 blue, 4 red".
func ParseColorCounts(set string) (ColorCounts, error) {
	set = strings.TrimSpace(set)
	var c ColorCounts
	for _, pair := range strings.Split(set, ",") {
		pair = strings.TrimSpace(pair)
		countStr, color, ok := strings.Cut(pair, " ")
		if !ok {
			return ColorCounts{}, &ParseError{Input: set, Token: pair, Msg: "want \"<count> <color>\", got"}
		}
		n, err := strconv.Atoi(countStr)
		if err != nil {
			return ColorCounts{}, &ParseError{Input: set, Token: countStr, Msg: "bad cube count", Err: err}
		}
		if n < 0 {
			return ColorCounts{}, &ParseError{Input: set, Token: countStr, Msg: "negative cube count"}
		}
		switch color {
		case "red":
			c.Red = n
		case "green":
			c.Green = n
		case "blue":
			c.Blue = n
		default:
			return ColorCounts{}, &ParseError{Input: set, Token: color, Msg: "unknown color"}
		}
	}
	return c, nil
}
