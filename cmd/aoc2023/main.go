package main

import (
	_ "embed"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmoss/aoc"
)

//go:embed main.go
var source []byte

var bagBounds = aoc.DefaultBounds

func init() {
	flag.Func("bounds", `bag content for day 2, e.g. "12 red, 13 green, 14 blue"`, func(s string) (err error) {
		bagBounds, err = aoc.ParseColorCounts(s)
		return err
	})
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file")
	}

	aoc.Run(2023, source, &solver{})
}

type solver struct {
	*aoc.Puzzle
}

// bounds returns the bag content for day 2. The sample answer assumes
// the default bag, whatever -bounds says.
func (s solver) bounds() aoc.ColorCounts {
	if s.SampleMode {
		return aoc.DefaultBounds
	}
	return bagBounds
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	sum := 0
	s.ForLines(func(line string) error {
		v, err := aoc.LiteralCalibration(line)
		sum += v
		return err
	})
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	sum := 0
	s.ForLines(func(line string) error {
		v, err := aoc.Calibration(line)
		s.Debugf("%s -> %v", line, v)
		sum += v
		return err
	})
	return sum
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	sum := 0
	s.ForLines(func(line string) error {
		g, err := aoc.ParseGame(line)
		if err != nil {
			return err
		}
		if g.Possible(s.bounds()) {
			sum += g.ID
		}
		return nil
	})
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	s.ForLines(func(line string) error {
		g, err := aoc.ParseGame(line)
		if err != nil {
			return err
		}
		m := g.Max()
		s.Debugf("game %d: max %v power %d", g.ID, m, m.Power())
		sum += m.Power()
		return nil
	})
	return sum
}
