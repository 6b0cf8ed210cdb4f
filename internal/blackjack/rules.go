package blackjack

import "errors"

// Rules is the immutable tuple of policy flags an Engine consults: modify a
// field to change engine behavior, nothing else.
type Rules struct {
	// BlackjackOdds is the payoff multiplier for a player natural (typically
	// 1.5 for 3:2, or 1.2 for 6:5).
	BlackjackOdds float64

	// DealerHitsOnSoft17, if true, makes the dealer draw on a soft 17
	// instead of standing.
	DealerHitsOnSoft17 bool

	// DealerPeeksFor21, if true, prunes the two dealer-draw branches that
	// would have already been revealed by a pre-play peek.
	DealerPeeksFor21 bool

	// NaturalBlackjackSplits, if true, pays blackjack odds for a 21 reached
	// on two cards after a split; otherwise it pays even money.
	NaturalBlackjackSplits bool

	// DoubleAfterSplit enables the double-EV branch inside split.
	DoubleAfterSplit bool

	// HitSplitAces allows hitting after splitting a pair of aces.
	HitSplitAces bool

	// DoubleSplitAces allows doubling after splitting aces. Requires both
	// HitSplitAces and DoubleAfterSplit.
	DoubleSplitAces bool

	// CanSurrender is reserved for callers; the core does not compute a
	// surrender EV.
	CanSurrender bool
}

// DefaultRules returns a conservative six-deck rule set matching common
// casino defaults: 3:2 blackjack, dealer hits soft 17, dealer peeks, no
// blackjack payout on split naturals, double after split allowed, no
// hitting or doubling after splitting aces.
func DefaultRules() Rules {
	return Rules{
		BlackjackOdds:          1.5,
		DealerHitsOnSoft17:     true,
		DealerPeeksFor21:       true,
		NaturalBlackjackSplits: false,
		DoubleAfterSplit:       true,
		HitSplitAces:           false,
		DoubleSplitAces:        false,
		CanSurrender:           true,
	}
}

// Validate ensures the rule set is internally consistent before an Engine
// is built from it.
func (r Rules) Validate() error {
	if r.BlackjackOdds <= 0 {
		return errors.New("blackjack odds must be > 0")
	}
	if r.DoubleSplitAces && !(r.HitSplitAces && r.DoubleAfterSplit) {
		return errors.New("double split aces requires both hit split aces and double after split")
	}
	return nil
}
