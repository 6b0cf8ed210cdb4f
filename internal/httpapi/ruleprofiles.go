package httpapi

import (
	"encoding/json"
	"net/http"

	"blackjack-ev-engine/internal/blackjack"
)

// ruleProfileDTO is the wire shape for a named rule profile, mirroring
// blackjack.Rules field-for-field so clients never need to know the engine's
// internal struct layout.
type ruleProfileDTO struct {
	ID                     int64   `json:"id,omitempty"`
	Name                   string  `json:"name"`
	BlackjackOdds          float64 `json:"blackjack_odds"`
	DealerHitsOnSoft17     bool    `json:"dealer_hits_on_soft_17"`
	DealerPeeksFor21       bool    `json:"dealer_peeks_for_21"`
	NaturalBlackjackSplits bool    `json:"natural_blackjack_splits"`
	DoubleAfterSplit       bool    `json:"double_after_split"`
	HitSplitAces           bool    `json:"hit_split_aces"`
	DoubleSplitAces        bool    `json:"double_split_aces"`
	CanSurrender           bool    `json:"can_surrender"`
}

func toDTO(id int64, name string, r blackjack.Rules) ruleProfileDTO {
	return ruleProfileDTO{
		ID: id, Name: name,
		BlackjackOdds:          r.BlackjackOdds,
		DealerHitsOnSoft17:     r.DealerHitsOnSoft17,
		DealerPeeksFor21:       r.DealerPeeksFor21,
		NaturalBlackjackSplits: r.NaturalBlackjackSplits,
		DoubleAfterSplit:       r.DoubleAfterSplit,
		HitSplitAces:           r.HitSplitAces,
		DoubleSplitAces:        r.DoubleSplitAces,
		CanSurrender:           r.CanSurrender,
	}
}

func (d ruleProfileDTO) toRules() blackjack.Rules {
	return blackjack.Rules{
		BlackjackOdds:          d.BlackjackOdds,
		DealerHitsOnSoft17:     d.DealerHitsOnSoft17,
		DealerPeeksFor21:       d.DealerPeeksFor21,
		NaturalBlackjackSplits: d.NaturalBlackjackSplits,
		DoubleAfterSplit:       d.DoubleAfterSplit,
		HitSplitAces:           d.HitSplitAces,
		DoubleSplitAces:        d.DoubleSplitAces,
		CanSurrender:           d.CanSurrender,
	}
}

func (h *handlers) listRuleProfiles(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, http.StatusServiceUnavailable, "rule profile store not configured")
		return
	}
	rows, err := h.db.ListRuleProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	out := make([]ruleProfileDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDTO(row.ID, row.Name, row.Rules))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) createRuleProfile(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, http.StatusServiceUnavailable, "rule profile store not configured")
		return
	}
	var dto ruleProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if dto.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	rules := dto.toRules()
	if err := rules.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := h.db.CreateRuleProfile(r.Context(), dto.Name, rules)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(id, dto.Name, rules))
}
