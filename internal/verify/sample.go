// Package verify cross-validates the exact engine against random play: it
// deals real random cards from a depleting shoe, following the same
// stand/hit/double semantics, and settles each trial with the same outcome
// rules the exact engine uses. It is a consumer of internal/blackjack, never
// a participant in its recursion: it reuses the engine's Score, IsSoft and
// Outcome, so it checks the recursion and its weighting, not those helpers.
package verify

import (
	"math/rand"

	"blackjack-ev-engine/internal/blackjack"
)

// draw removes one random card from shoe, weighted by the remaining count
// per rank, and returns its rank.
func draw(rng *rand.Rand, shoe *blackjack.Shoe) blackjack.Rank {
	total := 0
	for _, n := range shoe {
		total += n
	}
	pick := rng.Intn(total)
	for i, n := range shoe {
		if pick < n {
			shoe[i]--
			return blackjack.RankAt(i)
		}
		pick -= n
	}
	panic("verify: draw called on empty shoe")
}

// playDealer deals the dealer's hole card (if only an up-card is present)
// and draws to the same stopping rule the exact engine enumerates against.
// Under DealerPeeksFor21 a hole card that would complete a dealer natural
// is returned to the shoe and redrawn, matching the engine's peek pruning.
func playDealer(rng *rand.Rand, rules blackjack.Rules, shoe *blackjack.Shoe, dealer blackjack.Hand) blackjack.Hand {
	if len(dealer) == 1 {
		hole := draw(rng, shoe)
		for rules.DealerPeeksFor21 && blackjack.Score(blackjack.Hand{dealer[0], hole}) == 21 {
			shoe[int(hole)-1]++
			hole = draw(rng, shoe)
		}
		dealer = append(dealer, hole)
	}
	for {
		score := blackjack.Score(dealer)
		soft := blackjack.IsSoft(dealer)
		if score > 21 {
			return dealer
		}
		if score > 17 || (score == 17 && (!soft || !rules.DealerHitsOnSoft17)) {
			return dealer
		}
		dealer = append(dealer, draw(rng, shoe))
	}
}

// playerHitToStand hits under a fixed total-17 stopping rule: a crude but
// serviceable basic-strategy stand-in, good enough to sanity-check the
// exact engine's Hit EV sign and rough magnitude, not to reproduce its
// optimal-play number exactly.
func playerHitToStand(rng *rand.Rand, shoe *blackjack.Shoe, player blackjack.Hand) blackjack.Hand {
	player = append(player, draw(rng, shoe))
	for blackjack.Score(player) < 17 {
		player = append(player, draw(rng, shoe))
	}
	return player
}

// Sample runs trials independent random deals of action from the given
// shoe/player/dealer state and returns the realized payout for each trial.
// It is not memoized and does not share state across calls.
func Sample(rules blackjack.Rules, shoe blackjack.Shoe, player, dealer blackjack.Hand, action string, trials int, rng *rand.Rand) []float64 {
	engine := blackjack.New(rules)
	out := make([]float64, 0, trials)

	for t := 0; t < trials; t++ {
		s := shoe
		p := append(blackjack.Hand(nil), player...)
		d := append(blackjack.Hand(nil), dealer...)

		var payout float64
		switch action {
		case "stand":
			d = playDealer(rng, rules, &s, d)
			payout = engine.Outcome(p, d, false)
		case "hit":
			p = playerHitToStand(rng, &s, p)
			if blackjack.Score(p) > 21 {
				payout = -1
				break
			}
			d = playDealer(rng, rules, &s, d)
			payout = engine.Outcome(p, d, false)
		case "double":
			p = append(p, draw(rng, &s))
			if blackjack.Score(p) > 21 {
				payout = -2
				break
			}
			d = playDealer(rng, rules, &s, d)
			payout = 2 * engine.Outcome(p, d, false)
		default:
			payout = 0
		}
		out = append(out, payout)
	}
	return out
}
