package chat

import (
	"fmt"
	"strings"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

// Relevance labels a score for presentation.
type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
)

// RelevanceOf returns RelevanceHigh for scores above settings.HighRelevanceScore.
func RelevanceOf(score int, settings config.ScoringSettings) Relevance {
	if score > settings.HighRelevanceScore {
		return RelevanceHigh
	}
	return RelevanceMedium
}

// ResultSection is one collection's results as shown to the user.
type ResultSection struct {
	Collection model.CollectionName
	Title      string
	Results    []model.ScoredResult // at most settings.DisplayLimit
}

// Sections returns the non-empty result sections of a turn in display order,
// truncated to the display limit.
func Sections(turn model.Turn, settings config.ScoringSettings) []ResultSection {
	byCollection := map[model.CollectionName][]model.ScoredResult{
		model.CollectionCodes:         turn.CodeResults,
		model.CollectionDocumentTypes: turn.TypeResults,
	}

	sections := make([]ResultSection, 0, len(model.CollectionNames))
	for _, name := range model.CollectionNames {
		results := byCollection[name]
		if len(results) == 0 {
			continue
		}
		if len(results) > settings.DisplayLimit {
			results = results[:settings.DisplayLimit]
		}
		sections = append(sections, ResultSection{Collection: name, Title: name.Title(), Results: results})
	}
	return sections
}

// FormatTurn renders a turn as plain text for terminals.
func FormatTurn(turn model.Turn, settings config.ScoringSettings) string {
	var b strings.Builder
	b.WriteString(turn.Content)

	for _, section := range Sections(turn, settings) {
		fmt.Fprintf(&b, "\n\n%s", section.Title)
		for _, r := range section.Results {
			b.WriteString("\n")
			b.WriteString(FormatResult(r, settings))
		}
	}

	if len(turn.Suggestions) > 0 {
		fmt.Fprintf(&b, "\n\n%s", SuggestionsHeader)
		for _, s := range turn.Suggestions {
			fmt.Fprintf(&b, "\n  - %s (%d%%)", s.Word, s.Ratio)
		}
	}

	return b.String()
}

// FormatResult renders one result: code, category, relevance, nature and description.
func FormatResult(r model.ScoredResult, settings config.ScoringSettings) string {
	return fmt.Sprintf("  %s - %s\n    Relevansi: %d%% (%s)\n    Sifat: %s\n    Keterangan: %s",
		orDefault(r.Code, "N/A"),
		orDefault(r.Category, "-"),
		r.Score,
		RelevanceOf(r.Score, settings),
		orDefault(r.Nature, "-"),
		orDefault(r.Description, "-"))
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
