// Package palette implements the drifting background color.
//
// Each channel sits on a four-rung ladder and a drift moves one randomly
// chosen channel a single rung. Edge rungs always step inward; inner rungs
// step either way with equal odds.
package palette

import (
	"image/color"
	"math/rand"
)

// Ladder lists the levels a channel can take, darkest first.
var Ladder = [...]uint8{0x00, 0x55, 0xaa, 0xff}

// Palette holds the red, green and blue channel levels.
type Palette [3]uint8

// Random returns a palette with every channel on a random rung.
func Random(rng *rand.Rand) Palette {
	var palette Palette
	for i := range palette {
		palette[i] = Ladder[rng.Intn(len(Ladder))]
	}
	return palette
}

// Drift returns the palette with one random channel moved one rung.
func (palette Palette) Drift(rng *rand.Rand) Palette {
	channel := rng.Intn(len(palette))
	palette[channel] = Step(palette[channel], rng)
	return palette
}

// Step moves a single level one rung. Levels off the ladder are returned
// unchanged.
func Step(level uint8, rng *rand.Rand) uint8 {
	switch level {
	case 0x00:
		return 0x55
	case 0xff:
		return 0xaa
	case 0x55:
		if rng.Intn(2) == 0 {
			return 0x00
		}
		return 0xaa
	case 0xaa:
		if rng.Intn(2) == 0 {
			return 0x55
		}
		return 0xff
	}
	return level
}

// OnLadder reports whether level is one of the ladder rungs.
func OnLadder(level uint8) bool {
	for _, rung := range Ladder {
		if rung == level {
			return true
		}
	}
	return false
}

// Color returns the palette as an opaque color.
func (palette Palette) Color() color.NRGBA {
	return color.NRGBA{R: palette[0], G: palette[1], B: palette[2], A: 0xff}
}
