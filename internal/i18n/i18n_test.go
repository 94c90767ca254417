package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLang(t *testing.T) {
	assert.Equal(t, EN, ParseLang("en"))
	assert.Equal(t, ZH, ParseLang("zh"))
	assert.Equal(t, ZH, ParseLang(""), "unknown values fall back to Chinese")
	assert.Equal(t, ZH, ParseLang("fr"))
}

func TestToggle(t *testing.T) {
	s := NewSwitcher(ZH)
	assert.Equal(t, EN, s.Toggle())
	assert.Equal(t, ZH, s.Toggle())
	assert.Equal(t, ZH, s.Lang())
}

func TestTranslate(t *testing.T) {
	s := NewSwitcher(ZH)
	assert.Equal(t, "吸气", s.T(KeyPhaseInhale))

	s.Toggle()
	assert.Equal(t, "Inhale", s.T(KeyPhaseInhale))
}

func TestUnknownKeyComesBackVerbatim(t *testing.T) {
	s := NewSwitcher(EN)
	assert.Equal(t, "no.such.key", s.T(Key("no.such.key")))
}

func TestChineseFallsBackToEnglish(t *testing.T) {
	s := NewSwitcher(ZH)
	assert.Equal(t, deck[KeyHelp].en, s.T(KeyHelp), "entries without a zh string use en")
}

func TestDeckComplete(t *testing.T) {
	for k, e := range deck {
		assert.NotEmpty(t, e.en, "key %s has no English copy", k)
	}
}
