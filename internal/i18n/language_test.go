package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"fr", French, true},
		{"fr-CM", French, true},
		{" FR_fr ", French, true},
		{"en-GB", English, true},
		{"EN", English, true},
		{"de", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	lang, ok := FromAcceptLanguage("de-DE,de;q=0.9,fr-CM;q=0.8,en;q=0.5")
	assert.True(t, ok)
	assert.Equal(t, French, lang)

	lang, ok = FromAcceptLanguage("en;q=0.4,fr;q=0.9")
	assert.True(t, ok)
	assert.Equal(t, French, lang)

	_, ok = FromAcceptLanguage("de, es")
	assert.False(t, ok)

	_, ok = FromAcceptLanguage("")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, French, Resolve("", "xx", "fr-FR", "en"))
	assert.Equal(t, English, Resolve())
	assert.Equal(t, English, Resolve("es"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, English, FromContext(ctx))
	assert.Equal(t, French, FromContext(WithLanguage(ctx, French)))
}

func TestFor(t *testing.T) {
	assert.Equal(t, "Non renseigné", For(French).NotProvided)
	assert.Equal(t, "Not provided", For("de").NotProvided)
}
