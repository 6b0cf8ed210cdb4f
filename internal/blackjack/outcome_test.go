package blackjack

import "testing"

func TestOutcome(t *testing.T) {
	e := New(DefaultRules())

	cases := []struct {
		name    string
		player  Hand
		dealer  Hand
		isSplit bool
		want    float64
	}{
		{"both natural push", Hand{Ace, Ten}, Hand{Ace, Ten}, false, 0},
		{"player natural wins odds", Hand{Ace, Ten}, Hand{9, 9}, false, 1.5},
		{"dealer natural loses", Hand{9, 9}, Hand{Ace, Ten}, false, -1},
		{"player bust", Hand{Ten, Ten, 5}, Hand{9, 7}, false, -1},
		{"dealer bust", Hand{9, 7}, Hand{Ten, Ten, 5}, false, 1},
		{"player higher", Hand{Ten, 9}, Hand{Ten, 8}, false, 1},
		{"player lower", Hand{Ten, 8}, Hand{Ten, 9}, false, -1},
		{"push on equal", Hand{Ten, 9}, Hand{9, Ten}, false, 0},
		{"split natural not blackjack by default", Hand{Ace, Ten}, Hand{9, 9}, true, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := e.Outcome(c.player, c.dealer, c.isSplit)
			if got != c.want {
				t.Errorf("Outcome(%v, %v, split=%v) = %v, want %v", c.player, c.dealer, c.isSplit, got, c.want)
			}
		})
	}
}

func TestOutcomeSplitNaturalRequiresFlag(t *testing.T) {
	rules := DefaultRules()
	rules.NaturalBlackjackSplits = false
	e := New(rules)

	// A split hand's two-card 21 does not count as a natural when the flag
	// is off: it pays even money (treated as a plain 21 vs dealer's hand).
	got := e.Outcome(Hand{Ace, Ten}, Hand{9, 8}, true)
	if got != 1 {
		t.Errorf("split natural without flag = %v, want 1 (plain win, not blackjack odds)", got)
	}

	rules.NaturalBlackjackSplits = true
	e2 := New(rules)
	got2 := e2.Outcome(Hand{Ace, Ten}, Hand{9, 8}, true)
	if got2 != rules.BlackjackOdds {
		t.Errorf("split natural with flag = %v, want %v", got2, rules.BlackjackOdds)
	}
}
