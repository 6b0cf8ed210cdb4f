package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"blackjack-ev-engine/internal/blackjack"
	"blackjack-ev-engine/internal/verify"
)

func parseHand(s string) (blackjack.Hand, error) {
	parts := strings.Split(s, ",")
	h := make(blackjack.Hand, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad rank %q: %w", p, err)
		}
		h = append(h, blackjack.Rank(n))
	}
	return h, nil
}

func main() {
	decks := flag.Int("decks", 6, "number of decks in the shoe")
	player := flag.String("player", "10,9", "comma-separated player ranks")
	dealer := flag.String("dealer", "6", "comma-separated dealer up-card ranks")
	action := flag.String("action", "stand", "stand, hit, or double")
	trials := flag.Int("trials", 200000, "number of random trials to sample")
	seed := flag.Int64("seed", 1, "RNG seed")
	flag.Parse()

	playerHand, err := parseHand(*player)
	if err != nil {
		log.Fatalf("--player: %v", err)
	}
	dealerHand, err := parseHand(*dealer)
	if err != nil {
		log.Fatalf("--dealer: %v", err)
	}

	rules := blackjack.DefaultRules()
	shoe := blackjack.NewShoe(*decks)
	engine := blackjack.New(rules)

	var exact float64
	switch *action {
	case "stand":
		exact, err = engine.Stand(shoe, playerHand, dealerHand)
	case "hit":
		exact, err = engine.Hit(shoe, playerHand, dealerHand)
	case "double":
		exact, err = engine.Double(shoe, playerHand, dealerHand)
	default:
		log.Fatalf("unsupported action for simcheck: %s (want stand, hit, or double)", *action)
	}
	if err != nil {
		log.Fatalf("exact engine: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	vals := verify.Sample(rules, shoe, playerHand, dealerHand, *action, *trials, rng)
	mean := verify.Mean(vals)
	low, hi := verify.BootstrapCI95(vals, 2000, rng)

	fmt.Printf("exact %s EV:   %+.4f\n", *action, exact)
	fmt.Printf("sampled mean: %+.4f  (95%% CI [%+.4f, %+.4f], n=%d)\n", mean, low, hi, *trials)

	if exact < low || exact > hi {
		fmt.Println("WARNING: exact EV falls outside the sampled confidence interval")
		os.Exit(1)
	}
	fmt.Println("ok: exact EV within sampled confidence interval")
}
