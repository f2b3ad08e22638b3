// Package frame composes the watch face into an ordered list of drawing
// commands.
//
// Composition is pure: the same Input always produces the same Frame. A
// Frame is rendered by playing it back to a Surface, which is the only
// part that knows about pixels, widgets or terminals.
package frame

import (
	"image/color"

	"ksface/internal/core/geometry"
)

// CommandType identifies a drawing command.
type CommandType uint8

const (
	CmdFillRect   CommandType = iota // Fill an axis-aligned rectangle
	CmdFillCircle                    // Fill a disc
	CmdDrawLine                      // Stroke a line segment
	CmdDrawCircle                    // Stroke a circle outline
)

var commandTypeNames = [...]string{
	CmdFillRect:   "FillRect",
	CmdFillCircle: "FillCircle",
	CmdDrawLine:   "DrawLine",
	CmdDrawCircle: "DrawCircle",
}

// String returns the command name.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by every drawing command.
type Command interface {
	Type() CommandType
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	Rect  geometry.Rect
	Color color.NRGBA
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

// FillCircleCommand fills a disc.
type FillCircleCommand struct {
	Center geometry.Point
	Radius int
	Color  color.NRGBA
}

// Type implements Command.
func (FillCircleCommand) Type() CommandType { return CmdFillCircle }

// DrawLineCommand strokes a line from From to To.
type DrawLineCommand struct {
	From  geometry.Point
	To    geometry.Point
	Width int
	Color color.NRGBA
}

// Type implements Command.
func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawCircleCommand strokes a circle outline.
type DrawCircleCommand struct {
	Center geometry.Point
	Radius int
	Width  int
	Color  color.NRGBA
}

// Type implements Command.
func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// Alignment is the horizontal text alignment inside the label frame.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// LabelPosition names the three places the date label can sit.
type LabelPosition uint8

const (
	LabelRight  LabelPosition = iota // 3 o'clock
	LabelLeft                        // 9 o'clock
	LabelBottom                      // 6 o'clock
)

var labelPositionNames = [...]string{
	LabelRight:  "right",
	LabelLeft:   "left",
	LabelBottom: "bottom",
}

func (position LabelPosition) String() string {
	if int(position) < len(labelPositionNames) {
		return labelPositionNames[position]
	}
	return "unknown"
}

// Label is the separate text element showing the day of month.
type Label struct {
	Text      string
	Frame     geometry.Rect
	Alignment Alignment
	Position  LabelPosition
	Color     color.NRGBA
}

// Angles are the hand directions as fractions of a full turn.
type Angles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Frame is one composed redraw.
type Frame struct {
	Commands []Command
	Label    Label
	Angles   Angles
}
