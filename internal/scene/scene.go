// Package scene lays out and animates the showcase page: a vertical strip
// of sections scrolled by a spring, with reveal-on-view, pointer
// parallax, click ripples and the breathing demo widget. Simulation state
// lives here; drawing is split into the *_draw helpers so the logic is
// testable without a display.
package scene

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"breeze/internal/config"
	"breeze/internal/i18n"
)

type Scene struct {
	lang     *i18n.Switcher
	sections []*Section

	w, h, dpr  float64
	pageHeight float64

	spring    harmonica.Spring
	scroll    float64
	scrollVel float64
	target    float64
	current   int

	navShown   bool
	navAnim    float64
	lastScroll float64

	pointerX, pointerY float64

	ripples   [config.MaxRipples]ripple
	rippleIdx int
}

func New(lang *i18n.Switcher) *Scene {
	return &Scene{
		lang:     lang,
		sections: pageSections(),
		spring:   harmonica.NewSpring(harmonica.FPS(60), config.ScrollFrequency, config.ScrollDamping),
		navShown: true,
		navAnim:  1,
		dpr:      1,
	}
}

// Layout records the viewport size in device pixels and restacks the
// sections. Safe to call between any two ticks.
func (s *Scene) Layout(w, h, dpr float64) {
	s.w, s.h = w, h
	if dpr > 0 {
		s.dpr = dpr
	}
	top := 0.0
	for _, sec := range s.sections {
		sec.top = top
		sec.height = sec.heightFrac * h
		top += sec.height
	}
	s.pageHeight = top
	s.target = s.clampScroll(s.target)
	s.scroll = s.clampScroll(s.scroll)
}

func (s *Scene) clampScroll(v float64) float64 {
	max := s.pageHeight - s.h
	if max < 0 {
		max = 0
	}
	return math.Max(0, math.Min(max, v))
}

// Scroll is the current viewport offset in page space, device px.
func (s *Scene) Scroll() float64 { return s.scroll }

// ScrollBy retargets the spring by a wheel delta.
func (s *Scene) ScrollBy(delta float64) {
	s.target = s.clampScroll(s.target + delta)
	s.current = s.sectionAt(s.target)
}

// ScrollToSection snaps the spring target to a section top.
func (s *Scene) ScrollToSection(i int) {
	if i < 0 {
		i = 0
	}
	if i >= len(s.sections) {
		i = len(s.sections) - 1
	}
	s.current = i
	s.target = s.clampScroll(s.sections[i].top)
}

func (s *Scene) NextSection() { s.ScrollToSection(s.current + 1) }
func (s *Scene) PrevSection() { s.ScrollToSection(s.current - 1) }

func (s *Scene) sectionAt(offset float64) int {
	for i := len(s.sections) - 1; i > 0; i-- {
		if offset >= s.sections[i].top-s.h/2 {
			return i
		}
	}
	return 0
}

// NavVisible reports the nav show/hide animation state, 0 hidden to 1
// shown, smoothstepped for drawing.
func (s *Scene) NavVisible() float64 {
	t := s.navAnim
	return t * t * (3 - 2*t)
}

// Advance runs one tick: spring the scroll toward its target, animate the
// nav, ramp section reveals, age ripples.
func (s *Scene) Advance(dtMs, pointerX, pointerY float64) {
	s.pointerX, s.pointerY = pointerX, pointerY

	s.scroll, s.scrollVel = s.spring.Update(s.scroll, s.scrollVel, s.target)
	s.scroll = s.clampScroll(s.scroll)

	// Hide the nav while scrolling down, bring it back on any upward
	// scroll or near the top of the page.
	delta := s.scroll - s.lastScroll
	if delta > config.NavHideDelta*s.dpr && s.scroll > config.NavHeight*2*s.dpr {
		s.navShown = false
	} else if delta < -0.5 || s.scroll < 16*s.dpr {
		s.navShown = true
	}
	s.lastScroll = s.scroll
	if s.navShown {
		s.navAnim = math.Min(1, s.navAnim+config.NavAnimStep)
	} else {
		s.navAnim = math.Max(0, s.navAnim-config.NavAnimStep)
	}

	// Reveal is one-way: once a section has entered the viewport far
	// enough it stays revealed.
	for _, sec := range s.sections {
		if sec.reveal >= 1 {
			continue
		}
		if sec.top < s.scroll+s.h*config.RevealThreshold && sec.top+sec.height > s.scroll {
			sec.reveal = math.Min(1, sec.reveal+dtMs/config.RevealDurationMs)
		}
	}

	for i := range s.ripples {
		r := &s.ripples[i]
		if !r.active {
			continue
		}
		r.ageMs += dtMs
		if r.ageMs >= config.RippleLifeMs {
			r.active = false
		}
	}
}

// AddRipple spawns a click ripple at a screen position. The pool is fixed
// size; the oldest slot is overwritten when full.
func (s *Scene) AddRipple(x, y float64) {
	s.ripples[s.rippleIdx] = ripple{x: x, y: y, active: true}
	s.rippleIdx = (s.rippleIdx + 1) % len(s.ripples)
}

// Sections exposes the section list for layout queries and tests.
func (s *Scene) Sections() []*Section { return s.sections }
