package palette

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepEdgesMoveInward(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.Equal(t, uint8(0x55), Step(0x00, rng))
		assert.Equal(t, uint8(0xaa), Step(0xff, rng))
	}
}

func TestStepInnerRungsReachBothNeighbours(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[uint8]map[uint8]bool{0x55: {}, 0xaa: {}}
	for i := 0; i < 200; i++ {
		for from := range seen {
			seen[from][Step(from, rng)] = true
		}
	}
	assert.Equal(t, map[uint8]bool{0x00: true, 0xaa: true}, seen[0x55])
	assert.Equal(t, map[uint8]bool{0x55: true, 0xff: true}, seen[0xaa])
}

func TestStepLeavesOffLadderLevels(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, uint8(0x12), Step(0x12, rng))
}

func TestDriftStaysOnLadder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	palette := Random(rng)
	for i := 0; i < 1000; i++ {
		next := palette.Drift(rng)
		changed := 0
		for channel := range next {
			require.True(t, OnLadder(next[channel]), "channel %d left the ladder: %#x", channel, next[channel])
			if next[channel] != palette[channel] {
				changed++
			}
		}
		require.Equal(t, 1, changed, "exactly one channel moves per drift")
		palette = next
	}
}

func TestDriftIsReplayableFromSeed(t *testing.T) {
	run := func() []Palette {
		rng := rand.New(rand.NewSource(99))
		palette := Random(rng)
		out := []Palette{palette}
		for i := 0; i < 20; i++ {
			palette = palette.Drift(rng)
			out = append(out, palette)
		}
		return out
	}
	assert.Equal(t, run(), run())
}

func TestColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x55, G: 0xaa, B: 0xff, A: 0xff}, Palette{0x55, 0xaa, 0xff}.Color())
}
