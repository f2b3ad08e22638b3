package frame

import (
	"image/color"

	"ksface/internal/core/geometry"
	"ksface/internal/core/model"
)

// Input is everything a redraw depends on.
type Input struct {
	Bounds geometry.Rect

	// Time is the effective time: the animated time while Animating,
	// the wall time otherwise.
	Time      model.Time
	Animating bool
	Radius    int

	Background  color.NRGBA
	Battery     model.BatteryStatus
	ShowSeconds bool

	// DateLabel is empty until the label text has been bound.
	DateLabel string
}

// Compose builds the frame for in. Commands come out in paint order:
// background, face disc, hands, indicators, outline.
func Compose(in Input) Frame {
	center := in.Bounds.Center()
	radius := in.Radius
	frame := Frame{
		Commands: make([]Command, 0, 6+model.IndicatorCount),
		Angles:   HandAngles(in.Time, in.Animating),
	}

	frame.add(FillRectCommand{Rect: in.Bounds, Color: in.Background})
	if radius > 0 {
		frame.add(FillCircleCommand{Center: center, Radius: radius, Color: model.FaceColor})
	}

	if radius > 2*model.HandMargin {
		frame.add(hand(center, frame.Angles.Hour, radius-2*model.HandMargin, model.HandStrokeWidth))
	}
	if radius > model.HandMargin {
		frame.add(hand(center, frame.Angles.Minute, radius-model.HandMargin, model.HandStrokeWidth))
		if in.ShowSeconds && !in.Animating {
			frame.add(hand(center, frame.Angles.Second, radius-model.HandMargin, model.SecondHandStrokeWidth))
		}
	}

	if radius > model.IndicatorSize {
		for index := 0; index < model.IndicatorCount; index++ {
			angle := float64(index) / model.IndicatorCount
			length := model.SmallIndicatorSize
			if index%3 == 0 {
				length = model.IndicatorSize
			}
			frame.add(DrawLineCommand{
				From:  geometry.PointAt(center, angle, radius),
				To:    geometry.PointAt(center, angle, radius-length),
				Width: model.HandStrokeWidth,
				Color: IndicatorColor(index, in.Battery),
			})
		}
	}

	if radius > 0 {
		frame.add(DrawCircleCommand{Center: center, Radius: radius, Width: model.HandStrokeWidth, Color: model.OutlineColor})
	}

	position := PlaceLabel(in.Time)
	frame.Label = Label{
		Text:      in.DateLabel,
		Frame:     labelFrame(position, center, radius),
		Alignment: labelAlignment(position),
		Position:  position,
		Color:     model.LabelColor,
	}
	return frame
}

func (frame *Frame) add(command Command) {
	frame.Commands = append(frame.Commands, command)
}

func hand(center geometry.Point, angle float64, length, width int) DrawLineCommand {
	return DrawLineCommand{
		From:  center,
		To:    geometry.PointAt(center, angle, length),
		Width: width,
		Color: model.HandColor,
	}
}

// SecondAngle is the second hand direction.
func SecondAngle(seconds float64) float64 {
	return seconds / 60
}

// MinuteAngle is the minute hand direction. It creeps with the seconds.
func MinuteAngle(minutes, seconds float64) float64 {
	return minutes/60 + SecondAngle(seconds)/60
}

// HourAngle is the hour hand direction. It creeps with the minutes. While
// animating the hours are on the 0-60 scale.
func HourAngle(hours, minutes, seconds float64, animating bool) float64 {
	perTurn := 12.0
	if animating {
		perTurn = 60
	}
	return hours/perTurn + MinuteAngle(minutes, seconds)/12
}

// HandAngles computes all three hand directions for t.
func HandAngles(t model.Time, animating bool) Angles {
	hours, minutes, seconds := float64(t.Hours), float64(t.Minutes), float64(t.Seconds)
	return Angles{
		Hour:   HourAngle(hours, minutes, seconds, animating),
		Minute: MinuteAngle(minutes, seconds),
		Second: SecondAngle(seconds),
	}
}

// IndicatorColor returns the stroke color of indicator index under the
// battery gauge.
func IndicatorColor(index int, battery model.BatteryStatus) color.NRGBA {
	if index > battery.GaugeLevel() {
		return model.IndicatorDim
	}
	if battery.Charging {
		return model.IndicatorAlert
	}
	return model.IndicatorOn
}

// PlaceLabel picks the label position that keeps it clear of the hands.
func PlaceLabel(t model.Time) LabelPosition {
	if between(t.Minutes, 10, 20) || between(t.Hours, 2, 3) {
		if between(t.Minutes, 40, 50) || between(t.Hours, 8, 9) {
			return LabelBottom
		}
		return LabelLeft
	}
	return LabelRight
}

func between(value, low, high int) bool {
	return value >= low && value <= high
}

func labelFrame(position LabelPosition, center geometry.Point, radius int) geometry.Rect {
	rect := geometry.Rect{Width: model.LabelWidth, Height: model.LabelHeight}
	switch position {
	case LabelBottom:
		rect.X = center.X - 11
		rect.Y = center.Y + radius - model.IndicatorSize - 31
	case LabelLeft:
		rect.X = center.X - radius + model.IndicatorSize + 8
		rect.Y = center.Y - 17
	default:
		rect.X = center.X + radius - model.IndicatorSize - 31
		rect.Y = center.Y - 17
	}
	return rect
}

func labelAlignment(position LabelPosition) Alignment {
	switch position {
	case LabelBottom:
		return AlignCenter
	case LabelLeft:
		return AlignLeft
	default:
		return AlignRight
	}
}
