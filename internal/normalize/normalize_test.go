package normalize

import (
	"strings"
	"sync"
	"testing"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"lowercases", "PP.01", "pp.01"},
		{"trims surrounding whitespace", "  Foo  ", "foo"},
		{"keeps inner whitespace", " Surat  Dinas ", "surat  dinas"},
		{"keeps punctuation", "Kepegawaian!", "kepegawaian!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if Clean("  Foo  ") != Clean("foo") {
		t.Error("Clean should be stable under surrounding whitespace and case")
	}
}

func TestIndonesianStemmer_Stem(t *testing.T) {
	stemmer := NewStemmer(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
		{"punctuation only", ".", ""},
		{"root word unchanged", "surat", "surat"},
		{"confix ke-an", "kepegawaian", "pegawai"},
		{"confix ke-an putus", "keputusan", "putus"},
		{"pem-an", "pembayaran", "bayar"},
		{"suffix an", "kaitan", "kait"},
		{"prefix ter", "terkait", "kait"},
		{"pem-an with compound root", "pemberitahuan", "beritahu"},
		{"suffix an on edar", "edaran", "edar"},
		{"mem before b", "membangun", "bangun"},
		{"mem before vowel recodes p", "memukul", "pukul"},
		{"me before l", "melipat", "lipat"},
		{"di", "dibuang", "buang"},
		{"ke-an", "kesakitan", "sakit"},
		{"be before C-er", "bekerja", "kerja"},
		{"bel", "belajar", "ajar"},
		{"ter", "tergerak", "gerak"},
		{"possessive", "celananya", "celana"},
		{"particle", "hancurlah", "hancur"},
		{"reduplication", "surat-surat", "surat"},
		{"reduplication of derived words", "kepegawaian-kepegawaian", "pegawai"},
		{"short word unchanged", "xyz", "xyz"},
		{"digits unchanged", "pp 01", "pp 01"},
		{"every token stemmed", "Surat, Mutasi Pegawai!", "surat mutasi pegawai"},
		{"sentence", "surat terkait kepegawaian", "surat kait pegawai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stemmer.Stem(tt.input)
			if got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIndonesianStemmer_Deterministic(t *testing.T) {
	stemmer := NewStemmer(nil)

	first := stemmer.Stem("pengumuman kepegawaian")
	second := stemmer.Stem("pengumuman kepegawaian")
	if first != second {
		t.Errorf("Stem is not deterministic: %q vs %q", first, second)
	}

	fresh := NewStemmer(nil).Stem("pengumuman kepegawaian")
	if first != fresh {
		t.Errorf("cached and uncached results differ: %q vs %q", first, fresh)
	}
}

func TestIndonesianStemmer_Concurrent(t *testing.T) {
	stemmer := NewStemmer(nil)
	words := []string{"kepegawaian", "pembayaran", "menulis", "surat-surat", "mengirim"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, word := range words {
				_ = stemmer.Stem(word)
			}
		}()
	}
	wg.Wait()

	if got := stemmer.Stem("kepegawaian"); got != "pegawai" {
		t.Errorf("Stem after concurrent use = %q, want %q", got, "pegawai")
	}
}

func TestIndonesianStemmer_CustomDictionary(t *testing.T) {
	stemmer := NewStemmer(NewDictionary("Kirim"))

	if got := stemmer.Stem("dikirim"); got != "kirim" {
		t.Errorf("Stem(dikirim) = %q, want %q", got, "kirim")
	}
	// Words without a known root stay as they are.
	if got := stemmer.Stem("membaca"); got != "membaca" {
		t.Errorf("Stem(membaca) = %q, want %q", got, "membaca")
	}
}

func TestIndonesianStemmer_LoadedWords(t *testing.T) {
	dict := NewDictionary()
	if err := dict.Load(strings.NewReader("# extra roots\nbaca\n")); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := NewStemmer(dict).Stem("membaca"); got != "baca" {
		t.Errorf("Stem(membaca) = %q, want %q", got, "baca")
	}
}

func TestDictionary(t *testing.T) {
	dict := NewDictionary(" Surat ", "", "dinas")
	if !dict.Contains("surat") || !dict.Contains("dinas") {
		t.Error("expected trimmed, lowercased words to be present")
	}
	if dict.Len() != 2 {
		t.Errorf("Len() = %d, want 2", dict.Len())
	}

	err := dict.Load(strings.NewReader("# comment\n\nnota\n  naskah \n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !dict.Contains("nota") || !dict.Contains("naskah") {
		t.Error("expected loaded words to be present")
	}
	if dict.Contains("# comment") {
		t.Error("comments must not be added")
	}

	if DefaultDictionary().Len() == 0 {
		t.Error("default dictionary should not be empty")
	}
}
