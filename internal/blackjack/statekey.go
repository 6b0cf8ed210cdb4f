package blackjack

// action is the tagged choice of the four recursions the engine memoizes,
// represented as a small enum rather than a subclass hierarchy.
type action uint8

const (
	actionStand action = iota
	actionHit
	actionDouble
	actionSplit
)

// stateKey canonicalizes a memoization point: the full shoe composition,
// the player's score and softness (not its full hand — two hands sharing a
// score and softness have identical future EV against the same shoe,
// because the only thing that determines a hand's future is how much more
// it can draw without busting), the dealer's score, the split flag, and the
// action under consideration. It deliberately keys the dealer on score
// alone: the drawing policy depends only on score and softness, and
// softness is already resolved by the termination predicate before the key
// is consulted, so all pre-termination dealer states of equal score behave
// identically going forward. The peek-skip guard in standEV only fires at
// depth 1 (single dealer card), where it cannot collide with any depth>1
// state of the same score.
type stateKey struct {
	shoe        Shoe
	playerScore int
	playerSoft  bool
	dealerScore int
	isSplit     bool
	action      action
}

func (e *Engine) key(shoe Shoe, player, dealer Hand, isSplit bool, a action) stateKey {
	return stateKey{
		shoe:        shoe,
		playerScore: Score(player),
		playerSoft:  IsSoft(player),
		dealerScore: Score(dealer),
		isSplit:     isSplit,
		action:      a,
	}
}
