package chat

import (
	"reflect"
	"testing"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

var (
	both      = model.CollectionNames
	codesOnly = []model.CollectionName{model.CollectionCodes}
	typesOnly = []model.CollectionName{model.CollectionDocumentTypes}
)

func TestNewRouter(t *testing.T) {
	for _, policy := range []string{"", config.RoutingBoth, config.RoutingIntent} {
		if _, err := NewRouter(policy); err != nil {
			t.Errorf("NewRouter(%q) error = %v", policy, err)
		}
	}
	if _, err := NewRouter("sometimes"); err == nil {
		t.Error("NewRouter(\"sometimes\") expected an error")
	}
}

func TestBothRouter(t *testing.T) {
	router, _ := NewRouter(config.RoutingBoth)

	names, query := router.Route("kode pegawai")
	if !reflect.DeepEqual(names, both) {
		t.Errorf("names = %v, want %v", names, both)
	}
	if query != "kode pegawai" {
		t.Errorf("query = %q, keywords must be kept", query)
	}
}

func TestIntentRouter(t *testing.T) {
	router, _ := NewRouter(config.RoutingIntent)

	// steps run in order; the router keeps the last intent between them
	steps := []struct {
		name      string
		text      string
		wantNames []model.CollectionName
		wantQuery string
	}{
		{"no intent yet", "pegawai", both, "pegawai"},
		{"code keyword", "kode pegawai", codesOnly, "pegawai"},
		{"keyword with punctuation", "Klasifikasi: mutasi", codesOnly, "mutasi"},
		{"sticky intent", "mutasi", codesOnly, "mutasi"},
		{"switch intent", "jenis surat edaran", typesOnly, "surat edaran"},
		{"naskah keyword", "naskah dinas", typesOnly, "dinas"},
		{"both keywords", "kode jenis cuti", both, "cuti"},
		{"still sticky after ambiguous message", "cuti", typesOnly, "cuti"},
		{"keywords only are searched literally", "kode", codesOnly, "kode"},
	}

	for _, step := range steps {
		names, query := router.Route(step.text)
		if !reflect.DeepEqual(names, step.wantNames) {
			t.Errorf("%s: names = %v, want %v", step.name, names, step.wantNames)
		}
		if query != step.wantQuery {
			t.Errorf("%s: query = %q, want %q", step.name, query, step.wantQuery)
		}
	}

	router.Reset()
	if names, _ := router.Route("cuti"); !reflect.DeepEqual(names, both) {
		t.Errorf("after Reset names = %v, want %v", names, both)
	}
}
