package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCenteredLayer(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{"centered", "abcd", 20, 11, 8, 5},
		{"content wider than screen clamps to zero", "0123456789", 4, 1, 0, 0},
		{"multi-line", "ab\ncd\nef", 10, 9, 4, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := CreateCenteredLayer(tt.content, tt.screenWidth, tt.screenHeight)
			require.NotNil(t, layer)
			assert.Equal(t, tt.wantX, layer.GetX())
			assert.Equal(t, tt.wantY, layer.GetY())
			assert.Equal(t, ZOverlay, layer.GetZ())
		})
	}
}

func TestCreateCenteredLayer_EmptyContent(t *testing.T) {
	assert.Nil(t, CreateCenteredLayer("", 80, 24))
}

func TestOverlaySize(t *testing.T) {
	tests := []struct {
		name         string
		items        int
		screenW      int
		screenH      int
		wantW, wantH int
	}{
		{"few items use the minimum height", 1, 120, 40, 60, OverlayMinHeight},
		{"many items are capped", 50, 120, 40, 60, OverlayChromeHeight + OverlayMaxVisibleItems},
		{"narrow screen uses the minimum width", 3, 50, 40, OverlayMinWidth, OverlayMinHeight},
		{"wide screen uses the maximum width", 3, 400, 40, OverlayMaxWidth, OverlayMinHeight},
		{"short screen caps height", 50, 120, 12, 60, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := OverlaySize(tt.items, tt.screenW, tt.screenH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}
