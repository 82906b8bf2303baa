package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testutil "github.com/couvx/chatbot/internal/testing"
	"github.com/couvx/chatbot/model"
)

// snapshotSource serves fixed collections and counts per-collection reads
type snapshotSource struct {
	data            map[model.CollectionName]model.Collection
	collectionCalls int
}

func newSnapshotSource() *snapshotSource {
	return &snapshotSource{data: map[model.CollectionName]model.Collection{
		model.CollectionCodes: {
			{Code: "PP.01", Category: "Kepegawaian", Nature: "Biasa", Description: "Surat terkait mutasi pegawai"},
		},
		model.CollectionDocumentTypes: {
			{Code: "SE", Category: "Surat Edaran", Description: "Pemberitahuan umum"},
		},
	}}
}

func (s *snapshotSource) Counts() map[model.CollectionName]int {
	counts := make(map[model.CollectionName]int, len(s.data))
	for name, collection := range s.data {
		counts[name] = len(collection)
	}
	return counts
}

func (s *snapshotSource) Collection(name model.CollectionName) (model.Collection, error) {
	s.collectionCalls++
	return s.data[name], nil
}

func (s *snapshotSource) Collections() map[model.CollectionName]model.Collection {
	out := make(map[model.CollectionName]model.Collection, len(s.data))
	for name, collection := range s.data {
		out[name] = collection
	}
	return out
}

func newSnapshotLookup(source *snapshotSource) *Lookup {
	searcher, suggester := testutil.NewTestEngines()
	return NewLookup(source, searcher, suggester, nil, nil)
}

func TestLookup_AllCollectionsReadOneSnapshot(t *testing.T) {
	for _, names := range [][]model.CollectionName{nil, model.CollectionNames} {
		source := newSnapshotSource()

		answer, err := newSnapshotLookup(source).Run(context.Background(), "PP.01", "test", names...)
		require.NoError(t, err)

		assert.Zero(t, source.collectionCalls, "every collection comes from Collections()")
		require.Len(t, answer.Results[model.CollectionCodes], 1)
		assert.Equal(t, "PP.01", answer.Results[model.CollectionCodes][0].Code)
		assert.Contains(t, answer.Results, model.CollectionDocumentTypes)
	}
}

func TestLookup_SingleCollection(t *testing.T) {
	source := newSnapshotSource()

	answer, err := newSnapshotLookup(source).Run(context.Background(), "PP.01", "test", model.CollectionDocumentTypes)
	require.NoError(t, err)

	assert.Equal(t, 1, source.collectionCalls)
	assert.NotContains(t, answer.Results, model.CollectionCodes)
}

func TestLookup_SuggestionPoolSpansEveryCollection(t *testing.T) {
	source := newSnapshotSource()

	answer, err := newSnapshotLookup(source).Run(context.Background(), "pemberitahun", "test")
	require.NoError(t, err)

	assert.Zero(t, answer.Total())
	words := make([]string, 0, len(answer.Suggestions))
	for _, s := range answer.Suggestions {
		words = append(words, s.Word)
	}
	assert.Contains(t, words, "pemberitahuan", "jenis vocabulary is part of the pool")

	// the same typo over kode alone has nothing to suggest
	kodeOnly, err := newSnapshotLookup(newSnapshotSource()).Run(context.Background(), "pemberitahun", "test", model.CollectionCodes)
	require.NoError(t, err)
	for _, s := range kodeOnly.Suggestions {
		assert.NotEqual(t, "pemberitahuan", s.Word)
	}
}
