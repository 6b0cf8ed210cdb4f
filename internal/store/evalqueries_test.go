package store

import (
	"testing"

	"blackjack-ev-engine/internal/blackjack"
)

func TestShoeCounts(t *testing.T) {
	shoe := blackjack.NewShoe(1)
	got := shoeCounts(shoe)
	if len(got) != len(shoe) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(shoe))
	}
	for i, n := range shoe {
		if got[i] != int32(n) {
			t.Errorf("index %d: got %d want %d", i, got[i], n)
		}
	}
}

func TestHandInts(t *testing.T) {
	h := blackjack.Hand{blackjack.Ace, blackjack.Ten}
	got := handInts(h)
	want := []int32{1, 10}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d want %d", i, got[i], want[i])
		}
	}
}
