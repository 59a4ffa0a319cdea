// Package layers positions overlays on the lipgloss canvas.
package layers

import "charm.land/lipgloss/v2"

// Z-order of the canvas layers
const (
	ZBase    = 0
	ZOverlay = 5
	ZToast   = 10
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// It returns nil when content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y).Z(ZOverlay)
}

// OverlaySize picks the width and height of a list overlay (search results)
// holding itemCount rows.
func OverlaySize(itemCount, screenWidth, screenHeight int) (int, int) {
	width := min(max(screenWidth/OverlayWidthDivisor, OverlayMinWidth), OverlayMaxWidth)

	height := OverlayChromeHeight + min(itemCount, OverlayMaxVisibleItems)
	maxHeight := screenHeight * OverlayMaxHeightNumerator / OverlayMaxHeightDivisor

	height = max(height, OverlayMinHeight)
	height = min(height, maxHeight)

	return width, height
}
