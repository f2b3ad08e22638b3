package frame

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"ksface/internal/core/geometry"
)

type recordingSurface struct {
	calls []string
	label Label
}

func (surface *recordingSurface) FillRect(rect geometry.Rect, _ color.NRGBA) {
	surface.calls = append(surface.calls, fmt.Sprintf("rect %v", rect))
}

func (surface *recordingSurface) FillCircle(center geometry.Point, radius int, _ color.NRGBA) {
	surface.calls = append(surface.calls, fmt.Sprintf("disc %v %d", center, radius))
}

func (surface *recordingSurface) DrawLine(from, to geometry.Point, width int, _ color.NRGBA) {
	surface.calls = append(surface.calls, fmt.Sprintf("line %v %v %d", from, to, width))
}

func (surface *recordingSurface) DrawCircle(center geometry.Point, radius, width int, _ color.NRGBA) {
	surface.calls = append(surface.calls, fmt.Sprintf("circle %v %d %d", center, radius, width))
}

func (surface *recordingSurface) SetLabel(label Label) {
	surface.calls = append(surface.calls, "label")
	surface.label = label
}

func TestPlaybackPreservesOrder(t *testing.T) {
	frame := Frame{
		Commands: []Command{
			FillRectCommand{Rect: geometry.Rect{Width: 2, Height: 2}},
			FillCircleCommand{Center: geometry.Point{X: 1, Y: 1}, Radius: 1},
			DrawLineCommand{From: geometry.Point{}, To: geometry.Point{X: 1}, Width: 4},
			DrawCircleCommand{Center: geometry.Point{X: 1, Y: 1}, Radius: 1, Width: 4},
		},
		Label: Label{Text: "7"},
	}
	surface := &recordingSurface{}
	Playback(frame, surface)

	assert.Equal(t, []string{
		"rect {0 0 2 2}",
		"disc {1 1} 1",
		"line {0 0} {1 0} 4",
		"circle {1 1} 1 4",
		"label",
	}, surface.calls)
	assert.Equal(t, "7", surface.label.Text)
}
