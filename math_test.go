package aoc

import "testing"

func TestDigit(t *testing.T) {
	for r := '0'; r <= '9'; r++ {
		if v, ok := Digit(r); !ok || v != int(r-'0') {
			t.Errorf("Digit(%q) = %d, %v", r, v, ok)
		}
	}
	for _, r := range "a/:é " {
		if _, ok := Digit(r); ok {
			t.Errorf("Digit(%q) ok", r)
		}
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "", "x", "y"); got != "x" {
		t.Errorf("Or = %q, want x", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %d, want 0", got)
	}
}

func TestFold(t *testing.T) {
	got := Fold([]int{3, 9, 4}, Max[int], 0)
	if got != 9 {
		t.Errorf("Fold(Max) = %d, want 9", got)
	}
}
