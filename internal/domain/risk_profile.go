package domain

import "fmt"

type RiskProfile string

const (
	RiskProfile_Conservative           RiskProfile = "CONSERVATIVE"
	RiskProfile_ModeratelyConservative RiskProfile = "MODERATELY_CONSERVATIVE"
	RiskProfile_Balanced               RiskProfile = "BALANCED"
	RiskProfile_ModeratelyAggressive   RiskProfile = "MODERATELY_AGGRESSIVE"
	RiskProfile_Aggressive             RiskProfile = "AGGRESSIVE"
)

// NewRiskProfile parses a risk profile string. Unrecognized input is an
// error - the old substring matching silently fell through to a default,
// which hid typos from callers.
func NewRiskProfile(s string) (*RiskProfile, error) {
	m := map[string]RiskProfile{
		"CONSERVATIVE":            RiskProfile_Conservative,
		"MODERATELY_CONSERVATIVE": RiskProfile_ModeratelyConservative,
		"BALANCED":                RiskProfile_Balanced,
		"MODERATELY_AGGRESSIVE":   RiskProfile_ModeratelyAggressive,
		"AGGRESSIVE":              RiskProfile_Aggressive,
	}
	if value, ok := m[s]; ok {
		return &value, nil
	}

	return nil, fmt.Errorf("invalid risk profile: %s", s)
}
