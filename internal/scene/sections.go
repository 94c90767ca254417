package scene

import "breeze/internal/i18n"

type sectionKind int

const (
	kindHero sectionKind = iota
	kindFeatures
	kindDemo
	kindCTA
)

// feature is one column of the feature trio.
type feature struct {
	title, body i18n.Key
}

// Section is one full-width block of the page. top/height are assigned by
// Layout; reveal ramps 0..1 the first time the section scrolls into view.
type Section struct {
	kind       sectionKind
	heightFrac float64
	titleKey   i18n.Key
	bodyKey    i18n.Key
	features   []feature
	accentHue  float64

	top, height float64
	reveal      float64
}

func (sec *Section) Reveal() float64 { return sec.reveal }
func (sec *Section) Top() float64    { return sec.top }
func (sec *Section) Height() float64 { return sec.height }

func pageSections() []*Section {
	return []*Section{
		{
			kind:       kindHero,
			heightFrac: 1.0,
			titleKey:   i18n.KeyHeroTitle,
			bodyKey:    i18n.KeyHeroTagline,
			accentHue:  190,
		},
		{
			kind:       kindFeatures,
			heightFrac: 1.0,
			accentHue:  205,
			features: []feature{
				{title: i18n.KeyFeatureCalmTitle, body: i18n.KeyFeatureCalmBody},
				{title: i18n.KeyFeatureSleepTitle, body: i18n.KeyFeatureSleepBody},
				{title: i18n.KeyFeatureFocusTitle, body: i18n.KeyFeatureFocusBody},
			},
		},
		{
			kind:       kindDemo,
			heightFrac: 1.0,
			titleKey:   i18n.KeyDemoTitle,
			bodyKey:    i18n.KeyDemoHint,
			accentHue:  175,
		},
		{
			kind:       kindCTA,
			heightFrac: 0.85,
			titleKey:   i18n.KeyCTATitle,
			bodyKey:    i18n.KeyCTABody,
			accentHue:  210,
		},
	}
}
