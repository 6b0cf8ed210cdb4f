package blackjack

import "math"

// hitEV computes the expectation of drawing one card and then choosing
// optimally between standing and hitting again, for every possible next
// card weighted by its remaining count in the shoe.
func (e *Engine) hitEV(shoe Shoe, player, dealer Hand, isSplit bool) float64 {
	k := e.key(shoe, player, dealer, isSplit, actionHit)
	if v, ok := e.cache[k]; ok {
		return v
	}

	total := 0.0
	cards := 0

	for i := 0; i < nRanks; i++ {
		count := shoe[i]
		if count <= 0 {
			continue
		}
		r := rankAt(i)

		shoe[i]--
		player = append(player, r)

		var contribution float64
		if Score(player) > 21 {
			contribution = -1
		} else {
			standV := e.standEV(shoe, player, dealer, isSplit)
			hitV := e.hitEV(shoe, player, dealer, isSplit)
			contribution = math.Max(standV, hitV)
		}
		total += contribution * float64(count)
		cards += count

		player = player[:len(player)-1]
		shoe[i]++
	}

	ev := 0.0
	if cards > 0 {
		ev = total / float64(cards)
	}
	e.cache[k] = ev
	return ev
}

// doubleEV computes the expectation of taking exactly one more card with
// the wager doubled, then standing.
func (e *Engine) doubleEV(shoe Shoe, player, dealer Hand, isSplit bool) float64 {
	k := e.key(shoe, player, dealer, isSplit, actionDouble)
	if v, ok := e.cache[k]; ok {
		return v
	}

	total := 0.0
	cards := 0

	for i := 0; i < nRanks; i++ {
		count := shoe[i]
		if count <= 0 {
			continue
		}
		r := rankAt(i)

		shoe[i]--
		player = append(player, r)

		var contribution float64
		if Score(player) > 21 {
			contribution = -2
		} else {
			contribution = 2 * e.standEV(shoe, player, dealer, isSplit)
		}
		total += contribution * float64(count)
		cards += count

		player = player[:len(player)-1]
		shoe[i]++
	}

	ev := 0.0
	if cards > 0 {
		ev = total / float64(cards)
	}
	e.cache[k] = ev
	return ev
}

// splitEV computes the expectation of splitting a pair into two
// independently played hands. Both hands are assumed to draw from the same
// shoe and share the same post-draw EV; the engine does not model drawing
// correlation between the two hands (see DESIGN.md's open-question note).
// Preconditions: CanSplit(player) holds on entry.
func (e *Engine) splitEV(shoe Shoe, player, dealer Hand) float64 {
	k := e.key(shoe, player, dealer, true, actionSplit)
	if v, ok := e.cache[k]; ok {
		return v
	}

	splitCard := player[0]
	isAceSplit := splitCard == Ace

	// Drop the second card; the hand is now a single card that each draw
	// extends into a post-split hand.
	player = player[:1]

	total := 0.0
	cards := 0

	for i := 0; i < nRanks; i++ {
		count := shoe[i]
		if count <= 0 {
			continue
		}
		r := rankAt(i)

		shoe[i]--
		player = append(player, r)

		standV := e.standEV(shoe, player, dealer, true)
		hitV := math.Inf(-1)
		doubleV := math.Inf(-1)

		if !isAceSplit || e.rules.HitSplitAces {
			hitV = e.hitEV(shoe, player, dealer, true)
		}
		if e.rules.DoubleAfterSplit && (!isAceSplit || (e.rules.HitSplitAces && e.rules.DoubleSplitAces)) {
			doubleV = e.doubleEV(shoe, player, dealer, true)
		}

		best := math.Max(standV, math.Max(hitV, doubleV))
		total += 2 * best * float64(count)
		cards += count

		player = player[:1]
		shoe[i]++
	}

	ev := 0.0
	if cards > 0 {
		ev = total / float64(cards)
	}
	e.cache[k] = ev
	return ev
}
