package aoc

import (
	"errors"
	"slices"
	"testing"
)

func TestDigitTokens(t *testing.T) {
	tests := []struct {
		line string
		want []int
	}{
		{"5eightgdvgthfiveshthreesixfive", []int{5, 8, 5, 3, 6, 5}},
		{"twone3four", []int{2, 1, 3, 4}},
		{"eightwo", []int{8, 2}},
		{"oneight", []int{1, 8}},
		{"zero0nine9", []int{0, 0, 9, 9}},
		{"sevenine", []int{7, 9}},
		{"thre", nil},
		{"xyz", nil},
		{"", nil},
		{"fiv5", []int{5}},
	}
	for _, tt := range tests {
		if got := DigitTokens(tt.line); !slices.Equal(got, tt.want) {
			t.Errorf("DigitTokens(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestDigitScannerExhausted(t *testing.T) {
	s := NewDigitScanner("a1")
	if v, ok := s.Next(); !ok || v != 1 {
		t.Fatalf("Next() = %v, %v; want 1, true", v, ok)
	}
	for range 2 {
		if v, ok := s.Next(); ok {
			t.Errorf("Next() after end = %v, true", v)
		}
	}
}

func TestDigitScannerIndependent(t *testing.T) {
	const line = "two1nine"
	a := NewDigitScanner(line)
	a.Next()
	b := NewDigitScanner(line)
	if v, _ := b.Next(); v != 2 {
		t.Errorf("fresh scanner Next() = %v, want 2", v)
	}
	if v, _ := a.Next(); v != 1 {
		t.Errorf("second Next() = %v, want 1", v)
	}
}

func TestCalibration(t *testing.T) {
	lines := []struct {
		line string
		want int
	}{
		{"two1nine", 29},
		{"eightwothree", 83},
		{"abcone2threexyz", 13},
		{"xtwone3four", 24},
		{"4nineeightseven2", 42},
		{"zoneight234", 14},
		{"7pqrstsixteen", 76},
	}
	sum := 0
	for _, tt := range lines {
		got, err := Calibration(tt.line)
		if err != nil {
			t.Fatalf("Calibration(%q): %v", tt.line, err)
		}
		if got != tt.want {
			t.Errorf("Calibration(%q) = %d, want %d", tt.line, got, tt.want)
		}
		sum += got
	}
	if sum != 281 {
		t.Errorf("sum = %d, want 281", sum)
	}
}

func TestCalibrationSingleDigit(t *testing.T) {
	if got, err := Calibration("treb7uchet"); err != nil || got != 77 {
		t.Errorf("Calibration(treb7uchet) = %d, %v; want 77", got, err)
	}
}

func TestCalibrationIgnoresGarbage(t *testing.T) {
	base := MustGet(Calibration("two1nine"))
	for _, line := range []string{"qqtwo1ninezz", "two1xxnine", "jtwo1ninek"} {
		if got := MustGet(Calibration(line)); got != base {
			t.Errorf("Calibration(%q) = %d, want %d", line, got, base)
		}
	}
}

func TestCalibrationNoDigits(t *testing.T) {
	for _, line := range []string{"", "abc", "thre"} {
		if _, err := Calibration(line); !errors.Is(err, ErrNoDigits) {
			t.Errorf("Calibration(%q) err = %v, want ErrNoDigits", line, err)
		}
	}
}

func TestLiteralCalibration(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"1abc2", 12},
		{"pqr3stu8vwx", 38},
		{"a1b2c3d4e5f", 15},
		{"treb7uchet", 77},
		{"two1nine", 11},
	}
	for _, tt := range tests {
		if got, err := LiteralCalibration(tt.line); err != nil || got != tt.want {
			t.Errorf("LiteralCalibration(%q) = %d, %v; want %d", tt.line, got, err, tt.want)
		}
	}
	if _, err := LiteralCalibration("onetwo"); !errors.Is(err, ErrNoDigits) {
		t.Errorf("LiteralCalibration(onetwo) err = %v, want ErrNoDigits", err)
	}
}
