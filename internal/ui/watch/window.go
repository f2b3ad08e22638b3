// Package watch hosts a watch face in a fyne window.
package watch

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"ksface/internal/core/frame"
	"ksface/internal/core/model"
)

// Config defines window visuals.
type Config struct {
	Title string
	Scale float32
}

// Source is a face that renders lazily.
type Source interface {
	Dirty() bool
	Render(surface frame.Surface)
}

// Window shows one face. A click on the face or the space key is a tap.
type Window struct {
	app         fyne.App
	window      fyne.Window
	config      Config
	surface     *Surface
	area        *tapArea
	onTap       func()
	drawPending bool
	dispatch    func(func())
}

// New creates the face window. It is not shown until Show is called.
func New(app fyne.App, config Config) *Window {
	if config.Title == "" {
		config.Title = "ksface"
	}
	if config.Scale <= 0 {
		config.Scale = 1
	}

	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)
	window.SetFixedSize(true)

	surface := NewSurface(config.Scale)
	watch := &Window{
		app:      app,
		window:   window,
		config:   config,
		surface:  surface,
		dispatch: fyne.Do,
	}
	watch.area = newTapArea(surface, watch.tap)
	window.SetContent(watch.area)
	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeySpace || event.Name == fyne.KeyReturn {
			watch.tap()
		}
	})
	watch.applySize()
	return watch
}

// SetOnTap sets the tap handler.
func (watch *Window) SetOnTap(handler func()) {
	watch.onTap = handler
}

// Draw plays a frame onto the window. render receives the surface and
// must call frame.Playback (or face.Render) on it. Call on the fyne thread.
func (watch *Window) Draw(render func(frame.Surface)) {
	watch.surface.Begin()
	render(watch.surface)
	watch.surface.Commit()
}

// RequestDraw queues one redraw of source on the fyne thread. Requests
// made before it runs share it, and a source that is no longer dirty by
// then is not redrawn. Call on the fyne thread.
func (watch *Window) RequestDraw(source Source) {
	if watch.drawPending {
		return
	}
	watch.drawPending = true
	watch.dispatch(func() {
		watch.drawPending = false
		if source.Dirty() {
			watch.Draw(source.Render)
		}
	})
}

// Surface returns the window's drawing surface.
func (watch *Window) Surface() *Surface {
	return watch.surface
}

// UpdateConfig applies a new title and scale.
func (watch *Window) UpdateConfig(config Config) {
	if config.Title != "" {
		watch.config.Title = config.Title
		watch.window.SetTitle(config.Title)
	}
	if config.Scale > 0 {
		watch.config.Scale = config.Scale
		watch.surface.SetScale(config.Scale)
	}
	watch.applySize()
}

// Show displays the window and focuses it.
func (watch *Window) Show() {
	watch.window.Show()
	watch.window.RequestFocus()
}

// Hide hides the window.
func (watch *Window) Hide() {
	watch.window.Hide()
}

// SetOnClosed sets the handler run when the user closes the window.
func (watch *Window) SetOnClosed(handler func()) {
	watch.window.SetOnClosed(handler)
}

// Window returns the underlying fyne window.
func (watch *Window) Window() fyne.Window {
	return watch.window
}

func (watch *Window) tap() {
	if watch.onTap != nil {
		watch.onTap()
	}
}

func (watch *Window) applySize() {
	size := fyne.NewSize(float32(model.DisplayWidth)*watch.config.Scale, float32(model.DisplayHeight)*watch.config.Scale)
	watch.area.size = size
	watch.area.Refresh()
	watch.window.Resize(size)
}

type tapArea struct {
	widget.BaseWidget
	surface *Surface
	size    fyne.Size
	onTap   func()
}

func newTapArea(surface *Surface, onTap func()) *tapArea {
	area := &tapArea{surface: surface, onTap: onTap}
	area.ExtendBaseWidget(area)
	return area
}

func (area *tapArea) Tapped(*fyne.PointEvent) {
	if area.onTap != nil {
		area.onTap()
	}
}

func (area *tapArea) MinSize() fyne.Size {
	return area.size
}

func (area *tapArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(area.surface.Content())
}
