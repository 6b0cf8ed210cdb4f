package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"blackjack-ev-engine/internal/blackjack"
)

var useColor bool

const (
	colReset  = "\033[0m"
	colBold   = "\033[1m"
	colDim    = "\033[2m"
	colGreen  = "\033[32m"
	colRed    = "\033[31m"
	colYellow = "\033[33m"
	colCyan   = "\033[36m"
)

func c(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + colReset
}
func bold(s string) string { return c(colBold, s) }
func dim(s string) string  { return c(colDim, s) }
func good(s string) string { return c(colGreen, s) }
func bad(s string) string  { return c(colRed, s) }
func cyan(s string) string { return c(colCyan, s) }

func section(title string) { fmt.Printf("\n%s %s %s\n", dim("──"), bold(title), dim("──")) }

func parseHand(s string) (blackjack.Hand, error) {
	if s == "" {
		return nil, fmt.Errorf("empty hand")
	}
	parts := strings.Split(s, ",")
	h := make(blackjack.Hand, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad rank %q: %w", p, err)
		}
		if n < 1 || n > 10 {
			return nil, fmt.Errorf("rank %d out of range 1..10", n)
		}
		h = append(h, blackjack.Rank(n))
	}
	return h, nil
}

func main() {
	decks := flag.Int("decks", 6, "number of decks in the shoe")
	player := flag.String("player", "", "comma-separated player ranks, e.g. 10,9 (ace=1, ten-value=10)")
	dealer := flag.String("dealer", "", "comma-separated dealer up-card ranks, usually a single rank")
	odds := flag.Float64("blackjack-odds", 1.5, "payout multiplier for a player natural")
	hitSoft17 := flag.Bool("hit-soft-17", true, "dealer hits a soft 17")
	peek := flag.Bool("peek", true, "dealer peeks for a two-card 21 before the player acts")
	naturalSplits := flag.Bool("natural-splits", false, "pay blackjack odds for a post-split 21")
	doubleAfterSplit := flag.Bool("double-after-split", true, "allow doubling after a split")
	hitSplitAces := flag.Bool("hit-split-aces", false, "allow hitting split aces")
	doubleSplitAces := flag.Bool("double-split-aces", false, "allow doubling split aces")
	noColor := flag.Bool("no-color", false, "disable ANSI color output")
	flag.Parse()

	useColor = !*noColor && os.Getenv("NO_COLOR") == ""

	playerHand, err := parseHand(*player)
	if err != nil {
		log.Fatalf("--player: %v", err)
	}
	dealerHand, err := parseHand(*dealer)
	if err != nil {
		log.Fatalf("--dealer: %v", err)
	}

	rules := blackjack.Rules{
		BlackjackOdds:          *odds,
		DealerHitsOnSoft17:     *hitSoft17,
		DealerPeeksFor21:       *peek,
		NaturalBlackjackSplits: *naturalSplits,
		DoubleAfterSplit:       *doubleAfterSplit,
		HitSplitAces:           *hitSplitAces,
		DoubleSplitAces:        *doubleSplitAces,
		CanSurrender:           true,
	}
	if err := rules.Validate(); err != nil {
		log.Fatalf("invalid rules: %v", err)
	}

	shoe := blackjack.NewShoe(*decks)
	engine := blackjack.New(rules)

	section(fmt.Sprintf("player %v vs dealer %v, %d deck(s)", playerHand, dealerHand, *decks))

	report := func(label string, ev float64, err error) {
		if err != nil {
			fmt.Printf("%-8s %s\n", label, bad(err.Error()))
			return
		}
		tag := good(fmt.Sprintf("%+.4f", ev))
		if ev < 0 {
			tag = bad(fmt.Sprintf("%+.4f", ev))
		}
		fmt.Printf("%-8s %s\n", bold(label), tag)
	}

	standEV, err := engine.Stand(shoe, playerHand, dealerHand)
	report("stand", standEV, err)

	hitEV, err := engine.Hit(shoe, playerHand, dealerHand)
	report("hit", hitEV, err)

	doubleEV, err := engine.Double(shoe, playerHand, dealerHand)
	report("double", doubleEV, err)

	if blackjack.CanSplit(playerHand) {
		splitEV, err := engine.Split(shoe, playerHand, dealerHand)
		report("split", splitEV, err)
	} else {
		fmt.Printf("%-8s %s\n", "split", dim("not splittable"))
	}

	fmt.Println(cyan(dim("(all EVs in units of the initial wager)")))
}
