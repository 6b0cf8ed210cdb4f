package blackjack

// BruteForceStand computes the stand EV by direct, non-memoized recursive
// enumeration, with no cache at all. It exists only so tests can cross-check
// the cached recursive engine on small shoes (it revisits identical
// sub-states repeatedly, so it is far too slow for anything but 1-2 deck
// shoes). Production code never calls this; it is test-support only, useful
// for catching a state-key collision or an off-by-one in the weighting that
// an all-cached comparison would hide.
func BruteForceStand(rules Rules, shoe Shoe, player, dealer Hand) float64 {
	e := &Engine{rules: rules}
	return bruteStand(e, shoe, cloneHand(player), cloneHand(dealer), false)
}

func bruteStand(e *Engine, shoe Shoe, player, dealer Hand, isSplit bool) float64 {
	dealerScore := Score(dealer)
	soft := IsSoft(dealer)
	if dealerScore > 17 || (dealerScore == 17 && (!soft || !e.rules.DealerHitsOnSoft17)) {
		return e.Outcome(player, dealer, isSplit)
	}

	total := 0.0
	cards := 0
	peeking := e.rules.DealerPeeksFor21 && len(dealer) == 1

	for i := 0; i < nRanks; i++ {
		count := shoe[i]
		if count <= 0 {
			continue
		}
		r := rankAt(i)
		if peeking && ((dealer[0] == Ten && r == Ace) || (dealer[0] == Ace && r == Ten)) {
			continue
		}

		shoe[i]--
		dealer = append(dealer, r)

		total += bruteStand(e, shoe, player, dealer, isSplit) * float64(count)
		cards += count

		dealer = dealer[:len(dealer)-1]
		shoe[i]++
	}

	if cards == 0 {
		return 0
	}
	return total / float64(cards)
}
