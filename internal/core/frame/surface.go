package frame

import (
	"image/color"

	"ksface/internal/core/geometry"
)

// Surface receives a frame's drawing commands.
type Surface interface {
	FillRect(rect geometry.Rect, fill color.NRGBA)
	FillCircle(center geometry.Point, radius int, fill color.NRGBA)
	DrawLine(from, to geometry.Point, width int, stroke color.NRGBA)
	DrawCircle(center geometry.Point, radius, width int, stroke color.NRGBA)
	SetLabel(label Label)
}

// Playback sends every command of frame to surface in order, then the label.
func Playback(frame Frame, surface Surface) {
	for _, command := range frame.Commands {
		switch cmd := command.(type) {
		case FillRectCommand:
			surface.FillRect(cmd.Rect, cmd.Color)
		case FillCircleCommand:
			surface.FillCircle(cmd.Center, cmd.Radius, cmd.Color)
		case DrawLineCommand:
			surface.DrawLine(cmd.From, cmd.To, cmd.Width, cmd.Color)
		case DrawCircleCommand:
			surface.DrawCircle(cmd.Center, cmd.Radius, cmd.Width, cmd.Color)
		}
	}
	surface.SetLabel(frame.Label)
}
