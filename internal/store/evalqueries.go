package store

import (
	"context"

	"blackjack-ev-engine/internal/blackjack"
)

// RecordEvalQuery stores an audit row for a single EV computation. A single
// EV computation has no "chosen vs. best" distinction, so it collapses into
// one insert rather than a pair of related rows.
func (db *DB) RecordEvalQuery(
	ctx context.Context,
	ruleProfileID int64,
	action string,
	shoe blackjack.Shoe,
	player, dealer blackjack.Hand,
	resultEV float64,
	computeMS int,
) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO eval_queries(
			rule_profile_id, action, shoe_counts, player_hand, dealer_hand, result_ev, compute_ms
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, ruleProfileID, action, shoeCounts(shoe), handInts(player), handInts(dealer), resultEV, computeMS,
	).Scan(&id)
	return id, err
}

func shoeCounts(s blackjack.Shoe) []int32 {
	out := make([]int32, len(s))
	for i, n := range s {
		out[i] = int32(n)
	}
	return out
}

func handInts(h blackjack.Hand) []int32 {
	out := make([]int32, len(h))
	for i, r := range h {
		out[i] = int32(r)
	}
	return out
}
