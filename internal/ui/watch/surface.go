package watch

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"ksface/internal/core/frame"
	"ksface/internal/core/geometry"
)

// labelTextSize is the date label size before scaling.
const labelTextSize = 20

// Surface is a frame.Surface that builds fyne canvas objects. Playback
// goes between Begin and Commit; the container only changes on Commit.
type Surface struct {
	scale   float32
	root    *fyne.Container
	objects []fyne.CanvasObject
	label   *canvas.Text
}

// NewSurface creates an empty surface drawn at scale.
func NewSurface(scale float32) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{
		scale: scale,
		root:  container.NewWithoutLayout(),
	}
}

// Content returns the canvas object holding the face.
func (surface *Surface) Content() fyne.CanvasObject {
	return surface.root
}

// SetScale changes the scale used by the next frame.
func (surface *Surface) SetScale(scale float32) {
	if scale > 0 {
		surface.scale = scale
	}
}

// Begin starts a new frame.
func (surface *Surface) Begin() {
	surface.objects = surface.objects[:0]
	surface.label = nil
}

// Commit swaps the built frame into the container.
func (surface *Surface) Commit() {
	surface.root.Objects = append([]fyne.CanvasObject(nil), surface.objects...)
	surface.root.Refresh()
}

// Objects returns the committed canvas objects.
func (surface *Surface) Objects() []fyne.CanvasObject {
	return surface.root.Objects
}

// Label returns the date label of the last frame, if it had one.
func (surface *Surface) Label() *canvas.Text {
	return surface.label
}

// FillRect implements frame.Surface.
func (surface *Surface) FillRect(rect geometry.Rect, fill color.NRGBA) {
	rectangle := canvas.NewRectangle(fill)
	rectangle.Move(surface.pos(geometry.Point{X: rect.X, Y: rect.Y}))
	rectangle.Resize(fyne.NewSize(surface.px(rect.Width), surface.px(rect.Height)))
	surface.objects = append(surface.objects, rectangle)
}

// FillCircle implements frame.Surface.
func (surface *Surface) FillCircle(center geometry.Point, radius int, fill color.NRGBA) {
	circle := canvas.NewCircle(fill)
	surface.placeCircle(circle, center, radius)
	surface.objects = append(surface.objects, circle)
}

// DrawLine implements frame.Surface.
func (surface *Surface) DrawLine(from, to geometry.Point, width int, stroke color.NRGBA) {
	line := canvas.NewLine(stroke)
	line.StrokeWidth = surface.px(width)
	line.Position1 = surface.pos(from)
	line.Position2 = surface.pos(to)
	surface.objects = append(surface.objects, line)
}

// DrawCircle implements frame.Surface.
func (surface *Surface) DrawCircle(center geometry.Point, radius, width int, stroke color.NRGBA) {
	circle := canvas.NewCircle(color.Transparent)
	circle.StrokeColor = stroke
	circle.StrokeWidth = surface.px(width)
	surface.placeCircle(circle, center, radius)
	surface.objects = append(surface.objects, circle)
}

// SetLabel implements frame.Surface.
func (surface *Surface) SetLabel(label frame.Label) {
	if label.Text == "" {
		return
	}
	text := canvas.NewText(label.Text, label.Color)
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.TextSize = labelTextSize * surface.scale
	switch label.Alignment {
	case frame.AlignCenter:
		text.Alignment = fyne.TextAlignCenter
	case frame.AlignRight:
		text.Alignment = fyne.TextAlignTrailing
	default:
		text.Alignment = fyne.TextAlignLeading
	}
	text.Move(surface.pos(geometry.Point{X: label.Frame.X, Y: label.Frame.Y}))
	text.Resize(fyne.NewSize(surface.px(label.Frame.Width), surface.px(label.Frame.Height)))
	surface.label = text
	surface.objects = append(surface.objects, text)
}

func (surface *Surface) placeCircle(circle *canvas.Circle, center geometry.Point, radius int) {
	circle.Position1 = surface.pos(geometry.Point{X: center.X - radius, Y: center.Y - radius})
	circle.Position2 = surface.pos(geometry.Point{X: center.X + radius, Y: center.Y + radius})
}

func (surface *Surface) pos(point geometry.Point) fyne.Position {
	return fyne.NewPos(surface.px(point.X), surface.px(point.Y))
}

func (surface *Surface) px(value int) float32 {
	return float32(value) * surface.scale
}
