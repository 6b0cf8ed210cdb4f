package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET /api/health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body["ok"] {
		t.Errorf("body[ok] = false, want true")
	}
}

func TestEvaluateStandWithInlineRules(t *testing.T) {
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	reqBody := evalRequest{
		Rules: &ruleProfileDTO{
			BlackjackOdds:      1.5,
			DealerHitsOnSoft17: true,
			DealerPeeksFor21:   true,
			DoubleAfterSplit:   true,
		},
		Decks:  6,
		Player: []int{10, 9},
		Dealer: []int{6},
	}
	b, _ := json.Marshal(reqBody)

	resp, err := http.Post(srv.URL+"/api/ev/stand", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST /api/ev/stand: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out evalResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Action != "stand" {
		t.Errorf("action = %q, want stand", out.Action)
	}
	if out.EV < -2 || out.EV > 2 {
		t.Errorf("ev = %v, out of plausible bounds", out.EV)
	}
}

func TestEvaluateUnknownAction(t *testing.T) {
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	reqBody := evalRequest{Decks: 6, Player: []int{10, 9}, Dealer: []int{6}}
	b, _ := json.Marshal(reqBody)

	resp, err := http.Post(srv.URL+"/api/ev/surrender", "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestRuleProfilesUnavailableWithoutStore(t *testing.T) {
	srv := httptest.NewServer(Router(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/rule-profiles")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}
