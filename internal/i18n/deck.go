package i18n

// Copy keys for the showcase page.
const (
	KeyNavTitle    Key = "nav.title"
	KeyNavLang     Key = "nav.lang"
	KeyNavSoundOn  Key = "nav.sound_on"
	KeyNavSoundOff Key = "nav.sound_off"

	KeyHeroTitle   Key = "hero.title"
	KeyHeroTagline Key = "hero.tagline"
	KeyHeroHint    Key = "hero.hint"

	KeyFeatureCalmTitle  Key = "feature.calm.title"
	KeyFeatureCalmBody   Key = "feature.calm.body"
	KeyFeatureSleepTitle Key = "feature.sleep.title"
	KeyFeatureSleepBody  Key = "feature.sleep.body"
	KeyFeatureFocusTitle Key = "feature.focus.title"
	KeyFeatureFocusBody  Key = "feature.focus.body"

	KeyDemoTitle Key = "demo.title"
	KeyDemoHint  Key = "demo.hint"

	KeyPhaseInhale Key = "phase.inhale"
	KeyPhaseHold   Key = "phase.hold"
	KeyPhaseExhale Key = "phase.exhale"
	KeyPhaseRest   Key = "phase.rest"

	KeyCTATitle Key = "cta.title"
	KeyCTABody  Key = "cta.body"

	KeyFooter Key = "footer"
	KeyHelp   Key = "help"
)

// The nav.lang label shows the language you would switch TO, so it is
// deliberately crossed: the Chinese page offers "EN" and vice versa.
var deck = map[Key]entry{
	KeyNavTitle:    {zh: "微风 Breeze", en: "Breeze"},
	KeyNavLang:     {zh: "EN", en: "中文"},
	KeyNavSoundOn:  {zh: "声音:开", en: "Sound: on"},
	KeyNavSoundOff: {zh: "声音:关", en: "Sound: off"},

	KeyHeroTitle:   {zh: "呼吸,从这里开始", en: "Breathe. Start here."},
	KeyHeroTagline: {zh: "每天几分钟,让身心慢下来", en: "A few minutes a day to slow your body and mind down"},
	KeyHeroHint:    {zh: "向下滚动,了解更多", en: "Scroll down to explore"},

	KeyFeatureCalmTitle:  {zh: "平静", en: "Calm"},
	KeyFeatureCalmBody:   {zh: "跟随气泡的节奏,放松紧绷的神经", en: "Follow the rhythm of the bubbles and let tension go"},
	KeyFeatureSleepTitle: {zh: "睡眠", en: "Sleep"},
	KeyFeatureSleepBody:  {zh: "睡前的缓慢呼气练习,帮助更快入睡", en: "Slow exhale routines before bed help you fall asleep faster"},
	KeyFeatureFocusTitle: {zh: "专注", en: "Focus"},
	KeyFeatureFocusBody:  {zh: "短暂的呼吸间歇,找回工作的节奏", en: "Short breathing breaks bring back your working rhythm"},

	KeyDemoTitle: {zh: "试一试", en: "Try it now"},
	KeyDemoHint:  {zh: "跟着圆圈呼吸", en: "Breathe along with the circle"},

	KeyPhaseInhale: {zh: "吸气", en: "Inhale"},
	KeyPhaseHold:   {zh: "屏息", en: "Hold"},
	KeyPhaseExhale: {zh: "呼气", en: "Exhale"},
	KeyPhaseRest:   {zh: "放松", en: "Rest"},

	KeyCTATitle: {zh: "随时随地,深呼吸", en: "Deep breaths, anywhere"},
	KeyCTABody:  {zh: "下载应用,把平静带在身边", en: "Get the app and carry the calm with you"},

	KeyFooter: {zh: "微风 · 安静地呼吸", en: "Breeze - breathe quietly"},
	KeyHelp:   {en: "L: language  M: sound  P: screenshot  PgUp/PgDn: sections  Esc/Q: quit"},
}
