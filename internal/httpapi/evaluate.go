package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"blackjack-ev-engine/internal/blackjack"
)

// evalRequest describes one EV computation. RuleProfileID, if set, is
// resolved against the store; otherwise Rules, if set, carries a full inline
// rule set; with neither, DefaultRules applies. Decks is only consulted when
// Shoe is empty, building a fresh shoe of that many decks.
type evalRequest struct {
	RuleProfileID *int64          `json:"rule_profile_id,omitempty"`
	Rules         *ruleProfileDTO `json:"rules,omitempty"`
	Decks         int             `json:"decks,omitempty"`
	Shoe          []int           `json:"shoe,omitempty"`
	Player        []int           `json:"player"`
	Dealer        []int           `json:"dealer"`
}

type evalResponse struct {
	Action    string  `json:"action"`
	EV        float64 `json:"ev"`
	ComputeMS int64   `json:"compute_ms"`
}

func toHand(ranks []int) blackjack.Hand {
	h := make(blackjack.Hand, len(ranks))
	for i, v := range ranks {
		h[i] = blackjack.Rank(v)
	}
	return h
}

func (h *handlers) evaluate(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")

	var req evalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rules := blackjack.DefaultRules()
	switch {
	case req.Rules != nil:
		rules = req.Rules.toRules()
	case req.RuleProfileID != nil:
		if h.db == nil {
			writeError(w, http.StatusServiceUnavailable, "rule profile store not configured")
			return
		}
		row, err := h.db.GetRuleProfile(r.Context(), *req.RuleProfileID)
		if err != nil {
			writeError(w, http.StatusNotFound, "rule profile not found")
			return
		}
		rules = row.Rules
	case req.Rules != nil:
		rules = req.Rules.toRules()
	}
	if err := rules.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var shoe blackjack.Shoe
	if len(req.Shoe) > 0 {
		if len(req.Shoe) != len(shoe) {
			writeError(w, http.StatusBadRequest, "shoe must have exactly 10 rank counts")
			return
		}
		for i, n := range req.Shoe {
			shoe[i] = n
		}
	} else {
		decks := req.Decks
		if decks <= 0 {
			decks = 6
		}
		shoe = blackjack.NewShoe(decks)
	}

	player := toHand(req.Player)
	dealer := toHand(req.Dealer)

	engine := blackjack.New(rules)

	start := time.Now()
	var ev float64
	var err error
	switch action {
	case "stand":
		ev, err = engine.Stand(shoe, player, dealer)
	case "hit":
		ev, err = engine.Hit(shoe, player, dealer)
	case "double":
		ev, err = engine.Double(shoe, player, dealer)
	case "split":
		ev, err = engine.Split(shoe, player, dealer)
	default:
		writeError(w, http.StatusNotFound, "unknown action: "+action)
		return
	}
	elapsed := time.Since(start)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.db != nil && req.RuleProfileID != nil {
		_, _ = h.db.RecordEvalQuery(r.Context(), *req.RuleProfileID, action, shoe, player, dealer, ev, int(elapsed.Milliseconds()))
	}

	writeJSON(w, http.StatusOK, evalResponse{Action: action, EV: ev, ComputeMS: elapsed.Milliseconds()})
}
