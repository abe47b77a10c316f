package domain

import (
	"errors"
	"math/rand/v2"
)

// DefaultReferralCode is the fallback start parameter used alongside the configured REF_ID.
const DefaultReferralCode = "ref-r2RLzW1YK4Q4SjJk7vHHEU"

type WeightedOption struct {
	Value  string
	Weight int
}

type WeightedChoice struct {
	options []WeightedOption
	total   int
}

func NewWeightedChoice(options ...WeightedOption) (WeightedChoice, error) {
	total := 0
	kept := make([]WeightedOption, 0, len(options))
	for _, option := range options {
		if option.Weight < 0 {
			return WeightedChoice{}, errors.New("weights must not be negative")
		}
		if option.Weight == 0 {
			continue
		}
		total += option.Weight
		kept = append(kept, option)
	}
	if total == 0 {
		return WeightedChoice{}, errors.New("at least one option needs a positive weight")
	}

	return WeightedChoice{options: kept, total: total}, nil
}

// StartParamPolicy picks between the configured referral code and the default one, 50/50.
func StartParamPolicy(referralCode string) WeightedChoice {
	if referralCode == "" {
		referralCode = DefaultReferralCode
	}
	choice, _ := NewWeightedChoice(
		WeightedOption{Value: referralCode, Weight: 50},
		WeightedOption{Value: DefaultReferralCode, Weight: 50},
	)
	return choice
}

func (c WeightedChoice) Pick(rnd *rand.Rand) string {
	if c.total == 0 {
		return ""
	}
	n := rnd.IntN(c.total)
	for _, option := range c.options {
		if n < option.Weight {
			return option.Value
		}
		n -= option.Weight
	}
	return c.options[len(c.options)-1].Value
}

func (c WeightedChoice) Options() []WeightedOption {
	out := make([]WeightedOption, len(c.options))
	copy(out, c.options)
	return out
}
