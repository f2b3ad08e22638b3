package resources

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"

	"ksface/internal/core/frame"
	"ksface/internal/core/geometry"
	"ksface/internal/core/model"
	"ksface/internal/ui/raster"
)

// IconVariant selects which face an icon shows.
type IconVariant string

const (
	IconNormal   IconVariant = "normal"
	IconCharging IconVariant = "charging"
)

var iconBackground = color.NRGBA{R: 0x00, G: 0x55, B: 0xaa, A: 0xff}

var iconCache sync.Map

// Icon returns the face icon for variant, rendered on first use.
func Icon(variant IconVariant) (fyne.Resource, error) {
	name := fmt.Sprintf("ksface-%s.png", variant)
	if cached, ok := iconCache.Load(name); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := renderIcon(variant)
	if err != nil {
		return nil, fmt.Errorf("render icon %s: %w", name, err)
	}

	resource := fyne.NewStaticResource(name, data)
	iconCache.Store(name, resource)
	return resource, nil
}

// MustIcon returns the icon or panics on error.
func MustIcon(variant IconVariant) fyne.Resource {
	resource, err := Icon(variant)
	if err != nil {
		panic(err)
	}
	return resource
}

func renderIcon(variant IconVariant) ([]byte, error) {
	battery := model.BatteryStatus{Percent: 100}
	if variant == IconCharging {
		battery.Charging = true
	}
	f := frame.Compose(frame.Input{
		Bounds:     geometry.Rect{Width: model.DisplayWidth, Height: model.DisplayWidth},
		Time:       model.Time{Hours: 10, Minutes: 8},
		Radius:     model.FinalRadius,
		Background: iconBackground,
		Battery:    battery,
	})

	surface, err := raster.Render(f, raster.Options{Scale: 2})
	if err != nil {
		return nil, err
	}
	defer surface.Close()

	var buf bytes.Buffer
	if err := surface.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
