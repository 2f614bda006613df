package application

import (
	"fmt"

	"github.com/ahrav/go-compass/infrastructure/scoring"
)

// Supported grouping keys for ranking.
const (
	GroupByParty = "party"
	GroupByCity  = "city"
)

// EngineConfig defines how an engine normalizes answers and ranks groups
// and serves as the primary configuration entry point for the system.
// Use EngineConfig when loading settings from YAML or when constructing an
// engine programmatically.
type EngineConfig struct {
	// Options holds the scoring component settings: the missing answer
	// policy, the bin key precision, and the bin positioning mode.
	scoring.Options `yaml:",inline"`

	// RoundAnswers rounds every raw answer to the nearest integer before
	// the answer scale is derived.
	RoundAnswers bool `yaml:"round_answers" json:"round_answers"`

	// GroupBy selects the candidate attribute that partitions candidates
	// into ranked groups.
	GroupBy string `yaml:"group_by" json:"group_by" validate:"required,oneof=party city"`

	// Locale is the BCP 47 language tag used to collate group and city
	// names for display.
	Locale string `yaml:"locale" json:"locale" validate:"required,bcp47"`
}

// DefaultEngineConfig returns the configuration used when no file is given.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Options:      scoring.DefaultOptions(),
		RoundAnswers: false,
		GroupBy:      GroupByParty,
		Locale:       "fi",
	}
}

// Validate checks the configuration against its struct tags and the custom
// validators registered for this package.
func (c EngineConfig) Validate() error {
	v, err := configValidator()
	if err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("engine config validation failed: %w", err)
	}
	return nil
}

// groupKey returns the scoring key function for the configured grouping.
func (c EngineConfig) groupKey() scoring.GroupKey {
	if c.GroupBy == GroupByCity {
		return scoring.ByCity
	}
	return scoring.ByParty
}
