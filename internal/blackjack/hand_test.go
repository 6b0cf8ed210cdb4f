package blackjack

import "testing"

func TestScore(t *testing.T) {
	cases := []struct {
		hand Hand
		want int
	}{
		{Hand{Ten, Ten}, 20},
		{Hand{Ace, Ten}, 21},
		{Hand{Ace, Ace}, 12},
		{Hand{Ace, Ace, Ace}, 13},
		{Hand{Ace, Ace, Ten}, 12},
		{Hand{5, 6}, 11},
		{Hand{Ten, Ten, Ten}, 30},
		{Hand{}, 0},
	}
	for _, c := range cases {
		if got := Score(c.hand); got != c.want {
			t.Errorf("Score(%v) = %d, want %d", c.hand, got, c.want)
		}
	}
}

func TestIsSoft(t *testing.T) {
	cases := []struct {
		hand Hand
		want bool
	}{
		{Hand{Ace, Ten}, true},
		{Hand{Ace, 6}, true},
		{Hand{Ace, 6, Ten}, false},
		{Hand{Ten, Ten}, false},
		{Hand{Ace, Ace}, true},
		{Hand{Ace, Ace, 9}, true},
		{Hand{Ace, Ace, 9, Ace}, false},
	}
	for _, c := range cases {
		if got := IsSoft(c.hand); got != c.want {
			t.Errorf("IsSoft(%v) = %v, want %v", c.hand, got, c.want)
		}
	}
}

func TestScoreLiveImpliesSoftAtLeast12(t *testing.T) {
	for a := Ace; a <= Ten; a++ {
		for b := Ace; b <= Ten; b++ {
			h := Hand{a, b}
			score := Score(h)
			if score <= 21 {
				// live hand; no further obligation beyond being computable
				_ = score
			}
			if IsSoft(h) && score < 12 {
				t.Errorf("IsSoft(%v) true but score %d < 12", h, score)
			}
		}
	}
}

func TestCanSplit(t *testing.T) {
	cases := []struct {
		hand Hand
		want bool
	}{
		{Hand{7, 7}, true},
		{Hand{Ten, Ten}, true},
		{Hand{Ten, Ace}, false},
		{Hand{7}, false},
		{Hand{7, 7, 7}, false},
		{Hand{Ace, Ace}, true},
	}
	for _, c := range cases {
		if got := CanSplit(c.hand); got != c.want {
			t.Errorf("CanSplit(%v) = %v, want %v", c.hand, got, c.want)
		}
	}
}
