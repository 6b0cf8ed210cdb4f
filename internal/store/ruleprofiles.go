package store

import (
	"context"

	"blackjack-ev-engine/internal/blackjack"
)

// RuleProfileRow is a persisted, named rule configuration.
type RuleProfileRow struct {
	ID    int64
	Name  string
	Rules blackjack.Rules
}

// CreateRuleProfile upserts a named rule profile and returns its id.
func (db *DB) CreateRuleProfile(ctx context.Context, name string, r blackjack.Rules) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO rule_profiles(
			name, blackjack_odds, dealer_hits_on_soft_17, dealer_peeks_for_21,
			natural_blackjack_splits, double_after_split, hit_split_aces,
			double_split_aces, can_surrender
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (name) DO UPDATE
		  SET blackjack_odds = EXCLUDED.blackjack_odds,
		      dealer_hits_on_soft_17 = EXCLUDED.dealer_hits_on_soft_17,
		      dealer_peeks_for_21 = EXCLUDED.dealer_peeks_for_21,
		      natural_blackjack_splits = EXCLUDED.natural_blackjack_splits,
		      double_after_split = EXCLUDED.double_after_split,
		      hit_split_aces = EXCLUDED.hit_split_aces,
		      double_split_aces = EXCLUDED.double_split_aces,
		      can_surrender = EXCLUDED.can_surrender
		RETURNING id
	`, name, r.BlackjackOdds, r.DealerHitsOnSoft17, r.DealerPeeksFor21,
		r.NaturalBlackjackSplits, r.DoubleAfterSplit, r.HitSplitAces,
		r.DoubleSplitAces, r.CanSurrender,
	).Scan(&id)
	return id, err
}

// GetRuleProfile fetches a rule profile by id.
func (db *DB) GetRuleProfile(ctx context.Context, id int64) (RuleProfileRow, error) {
	var row RuleProfileRow
	row.ID = id
	err := db.QueryRow(ctx, `
		SELECT name, blackjack_odds, dealer_hits_on_soft_17, dealer_peeks_for_21,
		       natural_blackjack_splits, double_after_split, hit_split_aces,
		       double_split_aces, can_surrender
		  FROM rule_profiles WHERE id = $1
	`, id).Scan(
		&row.Name, &row.Rules.BlackjackOdds, &row.Rules.DealerHitsOnSoft17, &row.Rules.DealerPeeksFor21,
		&row.Rules.NaturalBlackjackSplits, &row.Rules.DoubleAfterSplit, &row.Rules.HitSplitAces,
		&row.Rules.DoubleSplitAces, &row.Rules.CanSurrender,
	)
	return row, err
}

// ListRuleProfiles returns every persisted rule profile, oldest first.
func (db *DB) ListRuleProfiles(ctx context.Context) ([]RuleProfileRow, error) {
	rows, err := db.Query(ctx, `
		SELECT id, name, blackjack_odds, dealer_hits_on_soft_17, dealer_peeks_for_21,
		       natural_blackjack_splits, double_after_split, hit_split_aces,
		       double_split_aces, can_surrender
		  FROM rule_profiles
		 ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RuleProfileRow
	for rows.Next() {
		var row RuleProfileRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Rules.BlackjackOdds, &row.Rules.DealerHitsOnSoft17, &row.Rules.DealerPeeksFor21,
			&row.Rules.NaturalBlackjackSplits, &row.Rules.DoubleAfterSplit, &row.Rules.HitSplitAces,
			&row.Rules.DoubleSplitAces, &row.Rules.CanSurrender,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
