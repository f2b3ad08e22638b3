package model

import "strconv"

// Time is the set of values the hands are drawn from.
//
// As a wall time Hours is in 12-hour form. As an animated time Hours is on
// a 0-60 minute-equivalent scale and Seconds stays zero.
type Time struct {
	Hours   int
	Minutes int
	Seconds int
}

// TwelveHour folds a 0-23 hour into the face's 12-hour form. Hours above 12
// lose 12; 0 and 12 are kept as they are.
func TwelveHour(hour int) int {
	if hour > 12 {
		return hour - 12
	}
	return hour
}

// HoursToMinutes expresses an hour out of 12 on the 0-60 scale used while
// the hands sweep in.
func HoursToMinutes(hours int) int {
	return int(float32(hours) / 12 * 60)
}

// DateLabel formats a day of month the way the label shows it: decimal,
// unpadded, truncated to two characters.
func DateLabel(day int) string {
	label := strconv.Itoa(day)
	if len(label) > 2 {
		label = label[:2]
	}
	return label
}
