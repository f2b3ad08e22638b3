// Package term shows watch face frames in a terminal using half-block
// cells, two pixels per cell.
package term

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const upperHalf = '▀'

// Cell is one terminal cell: the upper pixel is the foreground of the
// half block, the lower pixel its background.
type Cell struct {
	Rune rune
	Fg   color.NRGBA
	Bg   color.NRGBA
}

// Fit returns the largest cell grid that shows an image of size width x
// height inside columns x rows without distorting it.
func Fit(width, height, columns, rows int) (int, int) {
	if width <= 0 || height <= 0 || columns <= 0 || rows <= 0 {
		return 0, 0
	}
	outW := columns
	outH := (outW*height/width + 1) / 2
	if outH > rows {
		outH = rows
		outW = outH * 2 * width / height
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// Convert samples img onto a columns x rows grid of half-block cells.
func Convert(img image.Image, columns, rows int) []Cell {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()
	if srcW == 0 || srcH == 0 || columns <= 0 || rows <= 0 {
		return nil
	}

	gridH := rows * 2
	cells := make([]Cell, columns*rows)
	for y := 0; y < rows; y++ {
		for x := 0; x < columns; x++ {
			sx := bounds.Min.X + (x*srcW+srcW/2)/columns
			upper := bounds.Min.Y + ((2*y)*srcH+srcH/2)/gridH
			lower := bounds.Min.Y + ((2*y+1)*srcH+srcH/2)/gridH
			if sx >= bounds.Max.X {
				sx = bounds.Max.X - 1
			}
			if lower >= bounds.Max.Y {
				lower = bounds.Max.Y - 1
			}
			cells[y*columns+x] = Cell{
				Rune: upperHalf,
				Fg:   toNRGBA(img.At(sx, upper)),
				Bg:   toNRGBA(img.At(sx, lower)),
			}
		}
	}
	return cells
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// Screen is a tcell screen that draws face images and a status line.
type Screen struct {
	screen tcell.Screen
	status string
}

// NewScreen initializes the terminal.
func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	return &Screen{screen: screen}, nil
}

// SetStatus sets the line printed under the face.
func (screen *Screen) SetStatus(status string) {
	screen.status = status
}

// Draw blits img centered on the screen, followed by the status line.
func (screen *Screen) Draw(img image.Image) {
	columns, rows := screen.screen.Size()
	screen.screen.Clear()

	faceRows := rows - 1
	outW, outH := Fit(img.Bounds().Dx(), img.Bounds().Dy(), columns, faceRows)
	left := (columns - outW) / 2
	top := (faceRows - outH) / 2
	for index, cell := range Convert(img, outW, outH) {
		style := tcell.StyleDefault.
			Foreground(tcellColor(cell.Fg)).
			Background(tcellColor(cell.Bg))
		screen.screen.SetContent(left+index%outW, top+index/outW, cell.Rune, nil, style)
	}

	for index, r := range []rune(screen.status) {
		if index >= columns {
			break
		}
		screen.screen.SetContent(index, rows-1, r, nil, tcell.StyleDefault)
	}
	screen.screen.Show()
}

// PollEvent blocks until the next terminal event. It returns nil once
// the screen is finalized.
func (screen *Screen) PollEvent() tcell.Event {
	return screen.screen.PollEvent()
}

// Sync redraws the whole terminal after a resize.
func (screen *Screen) Sync() {
	screen.screen.Sync()
}

// Fini restores the terminal.
func (screen *Screen) Fini() {
	screen.screen.Fini()
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
