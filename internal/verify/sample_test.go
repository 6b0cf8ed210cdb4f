package verify

import (
	"math/rand"
	"testing"

	"blackjack-ev-engine/internal/blackjack"
)

func TestSampleStandMeanWithinOwnCI(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	rules := blackjack.DefaultRules()
	shoe := blackjack.NewShoe(6)
	player := blackjack.Hand{blackjack.Ten, 9}
	dealer := blackjack.Hand{6}

	vals := Sample(rules, shoe, player, dealer, "stand", 20000, rng)
	mean := Mean(vals)
	low, hi := BootstrapCI95(vals, 2000, rng)

	if mean < low || mean > hi {
		t.Fatalf("sample mean %v outside its own bootstrap CI [%v, %v]", mean, low, hi)
	}
}

func TestSampleHitBeatsStandOnHardSixteenVsTen(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	rules := blackjack.DefaultRules()
	shoe := blackjack.NewShoe(6)
	player := blackjack.Hand{9, 7}

	standVals := Sample(rules, shoe, player, blackjack.Hand{blackjack.Ten}, "stand", 20000, rng)
	hitVals := Sample(rules, shoe, player, blackjack.Hand{blackjack.Ten}, "hit", 20000, rng)

	standMean := Mean(standVals)
	hitMean := Mean(hitVals)
	if hitMean <= standMean {
		t.Errorf("hit mean %v should exceed stand mean %v for a hard 16 vs. a ten", hitMean, standMean)
	}
}

func TestWilsonCI95Bounds(t *testing.T) {
	low, hi := WilsonCI95(500, 0, 1000)
	if low < 0 || hi > 1 || low > hi {
		t.Errorf("WilsonCI95 = [%v, %v], want a valid sub-interval of [0,1]", low, hi)
	}
}

func TestBootstrapCI95Empty(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	low, hi := BootstrapCI95(nil, 100, rng)
	if low != 0 || hi != 0 {
		t.Errorf("BootstrapCI95(nil) = [%v, %v], want [0, 0]", low, hi)
	}
}
