// Package config provides configuration structures for the lookup service.
// It defines the scoring constants used by search and suggestions, and the
// application configuration loaded from YAML.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Default scoring constants. They were tuned by hand and are exposed as settings
// so that deployments can adjust them without code changes.
const (
	DefaultMatchThreshold       = 65
	DefaultExactCodeBonus       = 100
	DefaultPartialCodeBonus     = 60
	DefaultStemBonus            = 15
	DefaultMaxScore             = 100
	DefaultSuggestMinRatio      = 70
	DefaultSuggestLimit         = 7
	DefaultMinSuggestWordLength = 4
	DefaultHighRelevanceScore   = 85
	DefaultDisplayLimit         = 3
)

// ScoringSettings contains every tunable number of the ranking and suggestion engines.
//
// A record's final score is:
//
//	min(codeBonus + tokenSetRatio(query, category+" "+description) + stemBonus, MaxScore)
//
// where codeBonus is ExactCodeBonus when the query equals the code, PartialCodeBonus
// when the query is a substring of the code, and 0 otherwise. Records are returned
// only when their score is strictly greater than MatchThreshold.
type ScoringSettings struct {
	MatchThreshold       int `json:"match_threshold" yaml:"match_threshold"`                 // Minimum score (exclusive) for a record to be returned
	ExactCodeBonus       int `json:"exact_code_bonus" yaml:"exact_code_bonus"`               // Bonus when the query equals the record code
	PartialCodeBonus     int `json:"partial_code_bonus" yaml:"partial_code_bonus"`           // Bonus when the query is contained in the record code
	StemBonus            int `json:"stem_bonus" yaml:"stem_bonus"`                           // Bonus when the stemmed query occurs in the record text
	MaxScore             int `json:"max_score" yaml:"max_score"`                             // Upper bound of a final score
	SuggestMinRatio      int `json:"suggest_min_ratio" yaml:"suggest_min_ratio"`             // Minimum similarity for a did-you-mean word
	SuggestLimit         int `json:"suggest_limit" yaml:"suggest_limit"`                     // Maximum number of did-you-mean words
	MinSuggestWordLength int `json:"min_suggest_word_length" yaml:"min_suggest_word_length"` // Vocabulary words shorter than this are never suggested
	HighRelevanceScore   int `json:"high_relevance_score" yaml:"high_relevance_score"`       // Scores above this are presented as highly relevant
	DisplayLimit         int `json:"display_limit" yaml:"display_limit"`                     // Results shown per collection in a chat turn

	// defaulted is set once defaults are in place; zero values are deliberate from then on
	defaulted bool
}

// DefaultScoringSettings returns the settings with every default applied.
func DefaultScoringSettings() ScoringSettings {
	var settings ScoringSettings
	settings.ApplyDefaults()
	return settings
}

// UnmarshalYAML decodes the settings over the defaults: an absent key keeps its
// default and a key set to 0 stays 0.
func (s *ScoringSettings) UnmarshalYAML(value *yaml.Node) error {
	type plain ScoringSettings
	decoded := plain(DefaultScoringSettings())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*s = ScoringSettings(decoded)
	return nil
}

// ApplyDefaults applies default values to unset (zero) settings of a literal.
// It does nothing on settings that already carry their defaults (DefaultScoringSettings,
// decoded YAML, or a previous call), so a zero set on those afterwards is kept.
// MatchThreshold is left alone when explicitly set to a negative value, which
// lets callers disable the threshold entirely.
func (s *ScoringSettings) ApplyDefaults() {
	if s.defaulted {
		return
	}
	s.defaulted = true

	if s.MatchThreshold == 0 {
		s.MatchThreshold = DefaultMatchThreshold
	}
	if s.ExactCodeBonus == 0 {
		s.ExactCodeBonus = DefaultExactCodeBonus
	}
	if s.PartialCodeBonus == 0 {
		s.PartialCodeBonus = DefaultPartialCodeBonus
	}
	if s.StemBonus == 0 {
		s.StemBonus = DefaultStemBonus
	}
	if s.MaxScore == 0 {
		s.MaxScore = DefaultMaxScore
	}
	if s.SuggestMinRatio == 0 {
		s.SuggestMinRatio = DefaultSuggestMinRatio
	}
	if s.SuggestLimit == 0 {
		s.SuggestLimit = DefaultSuggestLimit
	}
	if s.MinSuggestWordLength == 0 {
		s.MinSuggestWordLength = DefaultMinSuggestWordLength
	}
	if s.HighRelevanceScore == 0 {
		s.HighRelevanceScore = DefaultHighRelevanceScore
	}
	if s.DisplayLimit == 0 {
		s.DisplayLimit = DefaultDisplayLimit
	}
}

// Validate checks the settings and returns one message per problem.
func (s *ScoringSettings) Validate() []string {
	var errors []string

	checkRange := func(name string, value, low, high int) {
		if value < low || value > high {
			errors = append(errors, fmt.Sprintf("%s must be between %d and %d, got %d", name, low, high, value))
		}
	}

	checkRange("max_score", s.MaxScore, 1, 100)
	checkRange("match_threshold", s.MatchThreshold, -1, s.MaxScore)
	checkRange("exact_code_bonus", s.ExactCodeBonus, 0, s.MaxScore)
	checkRange("partial_code_bonus", s.PartialCodeBonus, 0, s.MaxScore)
	checkRange("stem_bonus", s.StemBonus, 0, s.MaxScore)
	checkRange("suggest_min_ratio", s.SuggestMinRatio, 0, 99)
	checkRange("high_relevance_score", s.HighRelevanceScore, 0, s.MaxScore)

	if s.PartialCodeBonus > s.ExactCodeBonus {
		errors = append(errors, "partial_code_bonus cannot exceed exact_code_bonus")
	}
	if s.SuggestLimit < 0 {
		errors = append(errors, fmt.Sprintf("suggest_limit cannot be negative, got %d", s.SuggestLimit))
	}
	if s.MinSuggestWordLength < 1 {
		errors = append(errors, fmt.Sprintf("min_suggest_word_length must be at least 1, got %d", s.MinSuggestWordLength))
	}
	if s.DisplayLimit < 1 {
		errors = append(errors, fmt.Sprintf("display_limit must be at least 1, got %d", s.DisplayLimit))
	}

	return errors
}
