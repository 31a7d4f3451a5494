package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "Mario", "mario"},
		{"apostrophe space and tilde", "D'Angelo Ã", "dangeloa"},
		{"accents", "Niccolò Fabrizì", "niccolofabrizi"},
		{"german sharp s dropped", "Weiß", "wei"},
		{"non latin dropped", "Ζeus", "eus"},
		{"already normalized", "de.luca", "de.luca"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "D'Angelo Ã", "Éléonore Dupré", "  spazi  ", "Çelik-Öz", "ǅemal", "Ŀlorenç"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize("   "))
	assert.Equal(t, "Mario", Capitalize("  mARIO "))
	assert.Equal(t, "De luca", Capitalize("de LUCA"))
	assert.Equal(t, "Élodie", Capitalize("élodie"))
	assert.Equal(t, "X", Capitalize("x"))
}

func TestAccountName(t *testing.T) {
	tests := []struct {
		name                             string
		given, surname, given2, surname2 string
		external                         bool
		want                             string
	}{
		{"full form fits", "Mario", "Rossi", "", "", true, "mario.rossi.ext"},
		{"second names fit", "Anna", "Re", "Lia", "Bo", true, "annalia.rebo.ext"},
		{"initials form", "Massimiliano", "Rossi", "", "", true, "m.rossi.ext"},
		{"initials with second given", "Massimiliano", "Rossi", "Giovanni", "", true, "mg.rossi.ext"},
		{"truncated form", "Bartolomeo", "Constantinopoli", "", "", true, "b.constantinopol.ext"},
		{"truncated drops second surname", "Bartolomeo", "Constantino", "", "Della Valle", true, "b.constantino.ext"},
		{"internal limit", "Bartolomeo", "Constantinopoli", "", "", false, "b.constantinopoli"},
		{"internal full form", "Mario", "Rossi", "", "", false, "mario.rossi"},
		{"diacritics folded", "Niccolò", "D'Amico", "", "", true, "niccolo.damico.ext"},
		{"diacritics folded then initials", "Niccolò", "D'Ambrosio", "", "", true, "n.dambrosio.ext"},
		{"empty input degrades", "", "", "", "", true, "..ext"},
		{"empty given", "", "Rossi", "", "", true, ".rossi.ext"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccountName(tt.given, tt.surname, tt.given2, tt.surname2, tt.external)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountNameLengthBudget(t *testing.T) {
	names := []string{"", "A", "Bartolomeo", "Constantinopoli", "Maria Vittoria", "Dell'Acqua", "Àlvaro", "Xiomara-Guadalupe"}
	for _, g := range names {
		for _, s := range names {
			for _, s2 := range names {
				ext := AccountName(g, s, "", s2, true)
				assert.True(t, strings.HasSuffix(ext, ExternalSuffix))
				assert.LessOrEqual(t, len(strings.TrimSuffix(ext, ExternalSuffix)), ExternalLimit)

				internal := AccountName(g, s, "", s2, false)
				assert.LessOrEqual(t, len(internal), InternalLimit)
			}
		}
	}
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Rossi Mario (esterno)", FullName("Rossi", "", "Mario", "", true))
	assert.Equal(t, "Rossi Bianchi Mario Luca", FullName("Rossi", "Bianchi", "Mario", "Luca", false))
	assert.Equal(t, "D'Angelo Élodie", FullName("D'Angelo", "", "Élodie", "", false))
	assert.Equal(t, " (esterno)", FullName("", "", "", "", true))
	assert.Equal(t, "", FullName("", "", "", "", false))
}
