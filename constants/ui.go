package constants

import "time"

// Layout
const (
	HeaderHeight   = 3
	HeroHeight     = 12
	SectionGap     = 2
	CardMinWidth   = 26
	CardHeight     = 7
	CardGap        = 2
	PagePaddingX   = 2
	ContentMaxWide = 110
)

// Card float animation cycle
const FloatCycle = 2 * time.Second

// Hover transforms
const (
	// CardLiftPx is the translateY applied while a card is tilted
	CardLiftPx = 10.0
	// FloatAmplitudePx is the float keyframe peak offset
	FloatAmplitudePx = 10.0
	// LogoLiftPx and LogoScale are the logo hover transform
	LogoLiftPx = 2.0
	LogoScale  = 1.05
	// PerspectivePx is the tilt perspective distance
	PerspectivePx = 1000.0
)

// Hero fadeInUp start offset in rows
const HeroRiseRows = 2
