package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Navigation bar geometry (logical px, before device scaling)
	NavHeight    = 56
	NavPadding   = 20
	ButtonWidth  = 96
	ButtonHeight = 32

	// Scrolling
	WheelStep       = 96.0 // px per wheel notch
	ScrollFrequency = 4.5  // spring angular frequency
	ScrollDamping   = 0.9  // spring damping ratio
	NavAnimStep     = 0.12 // nav show/hide progress per tick
	NavHideDelta    = 2.0  // px/tick downward scroll that hides the nav

	// Section reveal
	RevealDurationMs = 600.0
	RevealSlide      = 36.0 // px of upward slide while revealing
	RevealThreshold  = 0.75 // fraction of viewport a section top must enter

	// Pointer parallax depth of the section accents
	ParallaxDepth = 0.05

	// Click ripples
	MaxRipples      = 16
	RippleLifeMs    = 900.0
	RippleMaxRadius = 120.0

	// Breathing demo widget
	WidgetMinRadius = 48.0
	WidgetMaxRadius = 132.0
)
