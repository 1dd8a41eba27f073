package tracking

import (
	"strings"
	"testing"
)

func TestNewNumber_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n := NewNumber()
		if len(n) != NumberLength {
			t.Fatalf("expected length %d, got %d (%q)", NumberLength, len(n), n)
		}
		for _, r := range n {
			if !strings.ContainsRune(alphabet, r) {
				t.Fatalf("unexpected character %q in %q", r, n)
			}
		}
	}
}

// Over 10,000 draws every position should exhibit a roughly uniform
// distribution across the 36-symbol alphabet: each symbol appears at least
// once per position, and none dominates. These bounds are dozens of standard
// deviations wide, so the test is deterministic in practice.
func TestNewNumber_RoughlyUniformPerPosition(t *testing.T) {
	const draws = 10000

	counts := make([]map[byte]int, NumberLength)
	for i := range counts {
		counts[i] = make(map[byte]int, len(alphabet))
	}

	for i := 0; i < draws; i++ {
		n := NewNumber()
		for pos := 0; pos < NumberLength; pos++ {
			counts[pos][n[pos]]++
		}
	}

	expected := draws / len(alphabet) // ~278
	for pos := 0; pos < NumberLength; pos++ {
		for i := 0; i < len(alphabet); i++ {
			sym := alphabet[i]
			c := counts[pos][sym]
			if c == 0 {
				t.Errorf("position %d: symbol %q never drawn in %d draws", pos, sym, draws)
			}
			if c > 3*expected {
				t.Errorf("position %d: symbol %q drawn %d times, expected around %d", pos, sym, c, expected)
			}
		}
	}
}
