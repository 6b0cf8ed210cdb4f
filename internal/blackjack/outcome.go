package blackjack

// Outcome returns the terminal payoff, in units of the initial wager, for
// player against dealer once both hands are final. isSplit marks a hand
// reached via a split, which affects natural-blackjack payout eligibility
// under Rules.NaturalBlackjackSplits.
func (e *Engine) Outcome(player, dealer Hand, isSplit bool) float64 {
	playerScore := Score(player)
	dealerScore := Score(dealer)

	playerNatural := playerScore == 21 && len(player) == 2 &&
		(!isSplit || e.rules.NaturalBlackjackSplits)
	dealerNatural := dealerScore == 21 && len(dealer) == 2

	switch {
	case playerNatural && dealerNatural:
		return 0
	case playerNatural:
		return e.rules.BlackjackOdds
	case dealerNatural:
		return -1
	case playerScore > 21:
		return -1
	case dealerScore > 21:
		return 1
	case playerScore > dealerScore:
		return 1
	case playerScore < dealerScore:
		return -1
	default:
		return 0
	}
}
