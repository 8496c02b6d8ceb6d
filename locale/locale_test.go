package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, French, Parse("fr"))
	assert.Equal(t, French, Parse("FR"))
	assert.Equal(t, Arabic, Parse("ar-SA"))
	assert.Equal(t, English, Parse("en_US"))
	assert.Equal(t, English, Parse("de"))
	assert.Equal(t, English, Parse(""))
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, French, Negotiate("fr-FR,fr;q=0.9,en;q=0.8"))
	assert.Equal(t, Arabic, Negotiate("ar"))
	assert.Equal(t, English, Negotiate("de-DE,de;q=0.9"))
	assert.Equal(t, English, Negotiate(""))
}

func TestTranslationFallback(t *testing.T) {
	assert.Equal(t, "Panier", T(French, "nav.cart"))
	assert.Equal(t, "السلة", T(Arabic, "nav.cart"))

	// Unknown key falls back to the key itself
	assert.Equal(t, "nav.unknown", T(French, "nav.unknown"))

	// Unknown language falls back to English
	assert.Equal(t, "Cart", T(Language("de"), "nav.cart"))
}

func TestDictionaryCoversEnglishKeys(t *testing.T) {
	en := Dictionary(English)
	for _, lang := range Supported {
		dict := Dictionary(lang)
		assert.Len(t, dict, len(en), "dictionary for %s should cover all keys", lang)
		for key := range en {
			assert.NotEmpty(t, dict[key], "%s missing %s", lang, key)
		}
	}
}

func TestIsRTL(t *testing.T) {
	assert.True(t, Arabic.IsRTL())
	assert.False(t, English.IsRTL())
	assert.False(t, French.IsRTL())
}
