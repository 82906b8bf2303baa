package fuzzy

import (
	"testing"
)

func TestCalculateIndelDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 0},
		{"a empty", "", "abc", 3},
		{"b empty", "abc", "", 3},
		{"identical", "surat", "surat", 0},
		{"missing letter", "kepegawain", "kepegawaian", 1},
		{"substitution costs two", "abcd", "abce", 2},
		{"transposition", "abc", "acb", 2},
		{"kitten sitting", "kitten", "sitting", 5},
		{"unicode chars", "résumé", "resume", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateIndelDistance(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CalculateIndelDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if reverse := CalculateIndelDistance(tt.b, tt.a); reverse != got {
				t.Errorf("distance is not symmetric: %d vs %d", got, reverse)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"both empty", "", "", 100},
		{"one empty", "", "surat", 0},
		{"identical", "surat", "surat", 100},
		{"typo missing letter", "kepegawain", "kepegawaian", 95},
		{"kitten sitting", "kitten", "sitting", 62},
		{"single substitution", "abcd", "abce", 75},
		{"swapped pair", "ab", "ba", 50},
		{"half rounds to even", "abcdefgh", "abcdexyz", 62},
		{"case sensitive", "Surat", "surat", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ratio(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTokenSetRatio(t *testing.T) {
	text := "kepegawaian surat terkait mutasi pegawai"

	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"query contained in text", "kepegawaian", text, 100},
		{"word order ignored", "mutasi pegawai", "pegawai mutasi", 100},
		{"duplicates ignored", "surat surat", "surat", 100},
		{"case and punctuation ignored", "Surat, Mutasi!", text, 100},
		{"empty query", "", text, 0},
		{"empty text", "surat", "", 0},
		{"partial overlap", "surat mutasi", "surat cuti", 82},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TokenSetRatio(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("TokenSetRatio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestTokenSetRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"surat mutasi", "surat cuti"},
		{"kepegawain", "kepegawaian surat terkait mutasi pegawai"},
		{"nota dinas", "naskah dinas"},
		{"xyz123notfound", "kepegawaian"},
	}

	for _, pair := range pairs {
		ab := TokenSetRatio(pair[0], pair[1])
		ba := TokenSetRatio(pair[1], pair[0])
		if ab != ba {
			t.Errorf("TokenSetRatio(%q, %q) = %d but reversed = %d", pair[0], pair[1], ab, ba)
		}
		if ab < 0 || ab > 100 {
			t.Errorf("TokenSetRatio(%q, %q) = %d, out of range", pair[0], pair[1], ab)
		}
	}
}

func TestTokenSetRatio_Nonsense(t *testing.T) {
	got := TokenSetRatio("xyz123notfound", "kepegawaian surat terkait mutasi pegawai")
	if got >= 50 {
		t.Errorf("expected a low score for an unrelated query, got %d", got)
	}
}
