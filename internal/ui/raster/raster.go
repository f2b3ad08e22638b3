// Package raster rasterizes watch face frames with gg so they can be
// written out as PNG images or blitted to other hosts.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"

	"ksface/internal/core/frame"
	"ksface/internal/core/geometry"
)

// DefaultFontSize is the date label size in unscaled pixels.
const DefaultFontSize = 20

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func labelFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("load label font: %w", fontErr)
		}
	})
	return fontSource, fontErr
}

// Options tunes a raster surface.
type Options struct {
	// Scale multiplies every coordinate and stroke. Defaults to 1.
	Scale float64
	// FontSize is the label size before scaling.
	FontSize float64
}

// Surface is a frame.Surface backed by a gg context.
type Surface struct {
	context *gg.Context
	scale   float64
	face    text.Face
	label   frame.Label
	err     error
}

// New creates a surface for a width x height face.
func New(width, height int, options Options) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("create raster surface: invalid size %dx%d", width, height)
	}
	if options.Scale <= 0 {
		options.Scale = 1
	}
	if options.FontSize <= 0 {
		options.FontSize = DefaultFontSize
	}
	source, err := labelFont()
	if err != nil {
		return nil, err
	}

	scaledWidth := int(float64(width) * options.Scale)
	scaledHeight := int(float64(height) * options.Scale)
	context := gg.NewContext(scaledWidth, scaledHeight)
	context.SetLineCap(gg.LineCapRound)
	return &Surface{
		context: context,
		scale:   options.Scale,
		face:    source.Face(options.FontSize * options.Scale),
	}, nil
}

// Render plays f back onto a new surface sized to its background fill.
func Render(f frame.Frame, options Options) (*Surface, error) {
	bounds := frameBounds(f)
	surface, err := New(bounds.Width, bounds.Height, options)
	if err != nil {
		return nil, err
	}
	frame.Playback(f, surface)
	if err := surface.Err(); err != nil {
		_ = surface.Close()
		return nil, err
	}
	return surface, nil
}

func frameBounds(f frame.Frame) geometry.Rect {
	for _, command := range f.Commands {
		if fill, ok := command.(frame.FillRectCommand); ok {
			return fill.Rect
		}
	}
	return geometry.Rect{}
}

// FillRect implements frame.Surface.
func (surface *Surface) FillRect(rect geometry.Rect, fill color.NRGBA) {
	if rect.X == 0 && rect.Y == 0 && surface.covers(rect) {
		surface.context.ClearWithColor(gg.FromColor(fill))
		return
	}
	surface.context.SetColor(fill)
	surface.context.DrawRectangle(surface.px(rect.X), surface.px(rect.Y), surface.px(rect.Width), surface.px(rect.Height))
	surface.fill()
}

// FillCircle implements frame.Surface.
func (surface *Surface) FillCircle(center geometry.Point, radius int, fill color.NRGBA) {
	surface.context.SetColor(fill)
	surface.context.DrawCircle(surface.px(center.X), surface.px(center.Y), surface.px(radius))
	surface.fill()
}

// DrawLine implements frame.Surface.
func (surface *Surface) DrawLine(from, to geometry.Point, width int, stroke color.NRGBA) {
	surface.context.SetColor(stroke)
	surface.context.SetLineWidth(surface.px(width))
	surface.context.DrawLine(surface.px(from.X), surface.px(from.Y), surface.px(to.X), surface.px(to.Y))
	surface.stroke()
}

// DrawCircle implements frame.Surface.
func (surface *Surface) DrawCircle(center geometry.Point, radius, width int, stroke color.NRGBA) {
	surface.context.SetColor(stroke)
	surface.context.SetLineWidth(surface.px(width))
	surface.context.DrawCircle(surface.px(center.X), surface.px(center.Y), surface.px(radius))
	surface.stroke()
}

// SetLabel implements frame.Surface. The label is drawn immediately, on
// top of everything played back before it.
func (surface *Surface) SetLabel(label frame.Label) {
	surface.label = label
	if label.Text == "" {
		return
	}
	surface.context.SetFont(surface.face)
	surface.context.SetColor(label.Color)

	x := surface.px(label.Frame.X)
	anchor := 0.0
	switch label.Alignment {
	case frame.AlignCenter:
		x = surface.px(label.Frame.X) + surface.px(label.Frame.Width)/2
		anchor = 0.5
	case frame.AlignRight:
		x = surface.px(label.Frame.X + label.Frame.Width)
		anchor = 1
	}
	surface.context.DrawStringAnchored(label.Text, x, surface.px(label.Frame.Y), anchor, 0.8)
}

// Label returns the last label set on the surface.
func (surface *Surface) Label() frame.Label {
	return surface.label
}

// Err returns the first drawing error, if any.
func (surface *Surface) Err() error {
	return surface.err
}

// Image returns the rasterized frame.
func (surface *Surface) Image() image.Image {
	return surface.context.Image()
}

// EncodePNG writes the rasterized frame as PNG.
func (surface *Surface) EncodePNG(w io.Writer) error {
	if err := surface.context.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the rasterized frame to path.
func (surface *Surface) SavePNG(path string) error {
	if err := surface.context.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

// Close releases the gg context.
func (surface *Surface) Close() error {
	return surface.context.Close()
}

func (surface *Surface) covers(rect geometry.Rect) bool {
	return int(surface.px(rect.Width)) >= surface.context.Width() &&
		int(surface.px(rect.Height)) >= surface.context.Height()
}

func (surface *Surface) px(value int) float64 {
	return float64(value) * surface.scale
}

func (surface *Surface) fill() {
	if err := surface.context.Fill(); err != nil && surface.err == nil {
		surface.err = fmt.Errorf("fill path: %w", err)
	}
}

func (surface *Surface) stroke() {
	if err := surface.context.Stroke(); err != nil && surface.err == nil {
		surface.err = fmt.Errorf("stroke path: %w", err)
	}
}
