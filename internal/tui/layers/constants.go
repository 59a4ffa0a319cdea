package layers

const (
	OverlayWidthDivisor = 2
	OverlayMinWidth     = 40
	OverlayMaxWidth     = 72

	OverlayChromeHeight    = 5 // input, spacing, footer, border
	OverlayMaxVisibleItems = 10
	OverlayMinHeight       = 8

	OverlayMaxHeightNumerator = 3 // 3/4 of the screen
	OverlayMaxHeightDivisor   = 4
)
