package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

func scored(code string, score int) model.ScoredResult {
	return model.ScoredResult{Record: model.Record{Code: code, Category: "Kepegawaian"}, Score: score}
}

func TestRelevanceOf(t *testing.T) {
	settings := config.DefaultScoringSettings()

	tests := []struct {
		score int
		want  Relevance
	}{
		{100, RelevanceHigh},
		{86, RelevanceHigh},
		{85, RelevanceMedium},
		{66, RelevanceMedium},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RelevanceOf(tt.score, settings), "score %d", tt.score)
	}
}

func TestSections(t *testing.T) {
	settings := config.DefaultScoringSettings()
	turn := model.Turn{
		Content:     FoundMessage,
		CodeResults: []model.ScoredResult{scored("A", 100), scored("B", 90), scored("C", 80), scored("D", 70)},
	}

	sections := Sections(turn, settings)
	require.Len(t, sections, 1, "empty collections are skipped")
	assert.Equal(t, model.CollectionCodes, sections[0].Collection)
	assert.Equal(t, "Hasil Kode Klasifikasi", sections[0].Title)
	assert.Len(t, sections[0].Results, settings.DisplayLimit)

	turn.TypeResults = []model.ScoredResult{scored("SE", 75)}
	sections = Sections(turn, settings)
	require.Len(t, sections, 2)
	assert.Equal(t, "Hasil Jenis Naskah", sections[1].Title)
}

func TestFormatTurn(t *testing.T) {
	settings := config.DefaultScoringSettings()

	t.Run("results", func(t *testing.T) {
		turn := model.Turn{
			Content: FoundMessage,
			CodeResults: []model.ScoredResult{{
				Record: model.Record{Code: "PP.01", Category: "Kepegawaian", Nature: "Biasa", Description: "Surat terkait mutasi pegawai"},
				Score:  100,
			}},
			TypeResults: []model.ScoredResult{{Record: model.Record{Code: "SE"}, Score: 70}},
		}

		out := FormatTurn(turn, settings)
		assert.True(t, strings.HasPrefix(out, FoundMessage))
		assert.Contains(t, out, "Hasil Kode Klasifikasi")
		assert.Contains(t, out, "PP.01 - Kepegawaian")
		assert.Contains(t, out, "Relevansi: 100% (high)")
		assert.Contains(t, out, "Sifat: Biasa")
		assert.Contains(t, out, "Keterangan: Surat terkait mutasi pegawai")
		assert.Contains(t, out, "SE - -", "missing category shows a dash")
		assert.Contains(t, out, "Relevansi: 70% (medium)")
	})

	t.Run("suggestions", func(t *testing.T) {
		turn := model.Turn{
			Content:     NotFoundMessage("kepegawain"),
			Suggestions: []model.Suggestion{{Word: "kepegawaian", Ratio: 95}},
		}

		out := FormatTurn(turn, settings)
		assert.Contains(t, out, SuggestionsHeader)
		assert.Contains(t, out, "kepegawaian (95%)")
		assert.NotContains(t, out, "Hasil")
	})
}
