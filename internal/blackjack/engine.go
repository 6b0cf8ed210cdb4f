package blackjack

import "errors"

// ErrInvalidArgument is returned by the public entry points when a required
// input is missing or, for Split, when the player's hand cannot be split.
var ErrInvalidArgument = errors.New("blackjack: invalid argument")

// Engine computes exact expected values for a fixed rule set, memoizing
// intermediate results in a cache it owns. The public methods recurse on a
// copy of the shoe and of each hand, so the caller's values are left
// unchanged. An Engine is not safe for concurrent use: it reads and writes
// the cache without synchronization. Give each goroutine its own Engine.
type Engine struct {
	rules Rules
	cache map[stateKey]float64
}

// New constructs an Engine with a fresh, empty cache for the given rules.
func New(rules Rules) *Engine {
	return &Engine{rules: rules, cache: make(map[stateKey]float64)}
}

// Rules returns the rule set this engine was constructed with.
func (e *Engine) Rules() Rules { return e.rules }

func cloneHand(h Hand) Hand {
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

func validateCommon(shoe Shoe, player, dealer Hand) error {
	if shoe.total() < 0 || player == nil || dealer == nil {
		return ErrInvalidArgument
	}
	return nil
}

// Stand returns the EV of standing on player against dealer given shoe.
func (e *Engine) Stand(shoe Shoe, player, dealer Hand) (float64, error) {
	if err := validateCommon(shoe, player, dealer); err != nil {
		return 0, err
	}
	p, d := cloneHand(player), cloneHand(dealer)
	return e.standEV(shoe, p, d, false), nil
}

// Hit returns the EV of hitting at least once, then playing optimally
// between hitting again and standing, for player against dealer given shoe.
func (e *Engine) Hit(shoe Shoe, player, dealer Hand) (float64, error) {
	if err := validateCommon(shoe, player, dealer); err != nil {
		return 0, err
	}
	p, d := cloneHand(player), cloneHand(dealer)
	return e.hitEV(shoe, p, d, false), nil
}

// Double returns the EV of doubling: exactly one more card, wager doubled,
// then standing.
func (e *Engine) Double(shoe Shoe, player, dealer Hand) (float64, error) {
	if err := validateCommon(shoe, player, dealer); err != nil {
		return 0, err
	}
	p, d := cloneHand(player), cloneHand(dealer)
	return e.doubleEV(shoe, p, d, false), nil
}

// Split returns the EV of splitting player's pair into two hands. Returns
// ErrInvalidArgument if player is not a splittable pair.
func (e *Engine) Split(shoe Shoe, player, dealer Hand) (float64, error) {
	if err := validateCommon(shoe, player, dealer); err != nil {
		return 0, err
	}
	if !CanSplit(player) {
		return 0, ErrInvalidArgument
	}
	p, d := cloneHand(player), cloneHand(dealer)
	return e.splitEV(shoe, p, d), nil
}
