// Package i18n holds the bilingual copy deck and the language switcher.
// The site ships exactly two hand-written locales, so the deck is a plain
// map; there are no plural or formatting rules to delegate to a catalog.
package i18n

type Lang string

const (
	ZH Lang = "zh"
	EN Lang = "en"
)

// ParseLang maps a stored preference onto a supported language. Chinese
// is the default locale.
func ParseLang(s string) Lang {
	if Lang(s) == EN {
		return EN
	}
	return ZH
}

type Key string

type entry struct {
	zh, en string
}

// Switcher tracks the active language. It is not safe for concurrent use;
// everything runs on the frame loop.
type Switcher struct {
	lang Lang
}

func NewSwitcher(l Lang) *Switcher {
	return &Switcher{lang: ParseLang(string(l))}
}

func (s *Switcher) Lang() Lang { return s.lang }

// Toggle flips between the two languages and returns the new one.
func (s *Switcher) Toggle() Lang {
	if s.lang == ZH {
		s.lang = EN
	} else {
		s.lang = ZH
	}
	return s.lang
}

// T resolves a copy key in the active language. Unknown keys come back
// verbatim so a missing entry is visible on screen instead of blank.
func (s *Switcher) T(k Key) string {
	e, ok := deck[k]
	if !ok {
		return string(k)
	}
	if s.lang == EN {
		return e.en
	}
	if e.zh == "" {
		return e.en
	}
	return e.zh
}
