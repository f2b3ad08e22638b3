package model

import (
	"image/color"
	"time"
)

// Display geometry.
const (
	DisplayWidth  = 144
	DisplayHeight = 168
)

// Face dimensions in pixels.
const (
	FinalRadius        = 65
	HandMargin         = 14
	IndicatorSize      = 6
	SmallIndicatorSize = 2
	IndicatorCount     = 12

	HandStrokeWidth       = 4
	SecondHandStrokeWidth = 2

	LabelWidth  = 24
	LabelHeight = 26
)

// Startup animation timing. The hands timeline runs twice as long as the
// radius timeline and both share the same delay.
const (
	AnimationDuration = 500 * time.Millisecond
	AnimationDelay    = 600 * time.Millisecond
)

const (
	// SecondsWindowLead is how many seconds before a full minute the second
	// hand disappears after a tap, giving a 55 second display window.
	SecondsWindowLead = 5

	// QuietPeriod is the tick period, in seconds, of the redraw throttle and
	// the palette drift while the second hand is hidden.
	QuietPeriod = 10
)

// Fixed face colors.
var (
	FaceColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	OutlineColor   = color.NRGBA{A: 0xff}
	HandColor      = color.NRGBA{A: 0xff}
	LabelColor     = color.NRGBA{A: 0xff}
	IndicatorAlert = color.NRGBA{R: 0xff, A: 0xff}
	IndicatorOn    = color.NRGBA{A: 0xff}
	IndicatorDim   = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
)
