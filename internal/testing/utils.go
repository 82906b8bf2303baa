// Package testing provides fixtures and helpers shared by the lookup tests.
package testing

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/search"
	"github.com/couvx/chatbot/internal/suggest"
	"github.com/couvx/chatbot/model"
	"github.com/couvx/chatbot/store"
)

// SampleCodes returns a small classification code collection.
func SampleCodes() model.Collection {
	return model.Collection{
		{Code: "PP.01", Category: "Kepegawaian", Nature: "Biasa", Description: "Surat terkait mutasi pegawai"},
		{Code: "PP.02", Category: "Kepegawaian", Nature: "Biasa", Description: "Surat cuti pegawai"},
		{Code: "KU.01", Category: "Keuangan", Nature: "Biasa", Description: "Pembayaran gaji pegawai"},
		{Code: "HK.02", Category: "Hukum", Nature: "Terbatas", Description: "Keputusan pimpinan"},
		{Code: "UM.03", Category: "Umum", Nature: "Biasa", Description: "Pengumuman kegiatan kantor"},
	}
}

// SampleDocumentTypes returns a small document type collection.
func SampleDocumentTypes() model.Collection {
	return model.Collection{
		{Code: "SE", Category: "Surat Edaran", Nature: "Biasa", Description: "Pemberitahuan tentang hal tertentu yang dianggap penting"},
		{Code: "ND", Category: "Nota Dinas", Nature: "Biasa", Description: "Naskah dinas internal antar pejabat"},
		{Code: "SK", Category: "Surat Keputusan", Nature: "Terbatas", Description: "Penetapan keputusan pimpinan"},
	}
}

// NewTestStore creates a record store serving the sample collections from memory.
func NewTestStore(t *testing.T) *store.RecordStore {
	t.Helper()
	data := map[model.CollectionName]model.Collection{
		model.CollectionCodes:         SampleCodes(),
		model.CollectionDocumentTypes: SampleDocumentTypes(),
	}
	return store.NewRecordStore(func(name model.CollectionName) (model.Collection, error) {
		return data[name], nil
	}, zap.NewNop())
}

// NewTestEngines creates a search service and a suggestion engine with default settings.
func NewTestEngines() (*search.Service, *suggest.Engine) {
	settings := config.DefaultScoringSettings()
	return search.NewService(nil, settings), suggest.NewEngine(settings)
}

// WriteRecordsFile writes records as a JSON array into dir and returns the path.
func WriteRecordsFile(t *testing.T, dir, name string, records model.Collection) string {
	t.Helper()
	data, err := json.Marshal(records)
	require.NoError(t, err, "Failed to marshal records")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600), "Failed to write records file")
	return path
}
