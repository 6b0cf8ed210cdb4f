package blackjack

import "testing"

func TestRulesValidate(t *testing.T) {
	cases := []struct {
		name    string
		rules   Rules
		wantErr bool
	}{
		{"default is valid", DefaultRules(), false},
		{"zero odds invalid", Rules{BlackjackOdds: 0}, true},
		{"negative odds invalid", Rules{BlackjackOdds: -1.5}, true},
		{
			"double split aces without prerequisites",
			Rules{BlackjackOdds: 1.5, DoubleSplitAces: true},
			true,
		},
		{
			"double split aces with prerequisites",
			Rules{BlackjackOdds: 1.5, HitSplitAces: true, DoubleAfterSplit: true, DoubleSplitAces: true},
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.rules.Validate()
			if (err != nil) != c.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
