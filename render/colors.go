package render

// Page palette, Tokyo Night base
var (
	RgbBackground = RGB{26, 27, 38}
	RgbText       = RGB{192, 202, 245}
	RgbMuted      = RGB{120, 127, 160}
	RgbTitle      = RGB{255, 255, 255}
	RgbAccent     = RGB{122, 162, 247}

	// Header: rgba background blended over the page
	RgbHeaderBg = RGB{255, 255, 255}
	RgbHeaderFg = RGB{40, 42, 58}
	RgbLogo     = RGB{102, 126, 234}

	// Hero gradient, 135deg #667eea -> #764ba2
	RgbHeroTop    = RGB{102, 126, 234}
	RgbHeroBottom = RGB{118, 75, 162}
	RgbHeroDots   = RGB{255, 255, 255}

	RgbCTABg = RGB{255, 107, 107}
	RgbCTAFg = RGB{255, 255, 255}

	RgbCardBg     = RGB{36, 40, 59}
	RgbCardBorder = RGB{65, 72, 104}
	RgbCardShadow = RGB{10, 10, 16}
	RgbTag        = RGB{158, 206, 106}

	RgbFocus  = RGB{255, 158, 100}
	RgbRipple = RGB{255, 255, 255}

	RgbFooterBg = RGB{22, 22, 30}
)

// DefaultBgRGB is the default background color (Tokyo Night)
var DefaultBgRGB = RgbBackground
