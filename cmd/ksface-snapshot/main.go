// Command ksface-snapshot renders the watch face to PNG files without a
// display: optionally every frame of the startup animation, then the
// settled face.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ksface/internal/core/animation"
	"ksface/internal/core/clock"
	"ksface/internal/core/face"
	"ksface/internal/core/model"
	"ksface/internal/ui/raster"
)

const frameStep = time.Second / 30

type options struct {
	at       time.Time
	percent  int
	charging bool
	tap      bool
	seed     int64
	scale    float64
	out      string
	frames   string
	verbose  bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], time.Now())
	if err != nil {
		log.Fatalf("ksface-snapshot: %v", err)
	}
	if err := run(opts); err != nil {
		log.Fatalf("ksface-snapshot: %v", err)
	}
}

// parseFlags reads the command line. Missing -time and -day fields come
// from now.
func parseFlags(args []string, now time.Time) (options, error) {
	fs := flag.NewFlagSet("ksface-snapshot", flag.ContinueOnError)
	at := fs.String("time", "", "wall time as 15:04:05 (default now)")
	day := fs.Int("day", 0, "day of month (default today)")
	percent := fs.Int("battery", 100, "battery percent")
	charging := fs.Bool("charging", false, "battery is charging")
	tap := fs.Bool("tap", false, "show the second hand as after a tap")
	seed := fs.Int64("seed", 1, "palette seed")
	scale := fs.Float64("scale", 2, "output scale")
	out := fs.String("o", "ksface.png", "output PNG path")
	frames := fs.String("frames", "", "directory for startup animation frames")
	verbose := fs.Bool("v", false, "log face events")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *at != "" {
		parsed, err := time.Parse("15:04:05", *at)
		if err != nil {
			return options{}, fmt.Errorf("parse -time: %w", err)
		}
		now = time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), parsed.Second(), 0, now.Location())
	}
	if *day != 0 {
		if *day < 0 || *day > daysIn(now.Year(), now.Month()) {
			return options{}, fmt.Errorf("invalid -day %d for %s %d", *day, now.Month(), now.Year())
		}
		now = time.Date(now.Year(), now.Month(), *day, now.Hour(), now.Minute(), now.Second(), 0, now.Location())
	}
	if *percent < 0 || *percent > 100 {
		return options{}, fmt.Errorf("invalid -battery %d", *percent)
	}

	return options{
		at:       now,
		percent:  *percent,
		charging: *charging,
		tap:      *tap,
		seed:     *seed,
		scale:    *scale,
		out:      *out,
		frames:   *frames,
		verbose:  *verbose,
	}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func run(opts options) error {
	logger := slog.New(slog.DiscardHandler)
	if opts.verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	mock := clock.NewMock(opts.at)
	watchFace := face.New(face.Options{Seed: opts.seed, Clock: mock, Logger: logger})
	scheduler := animation.NewClocked()

	watchFace.HandleTick(opts.at)
	watchFace.Start(scheduler, model.BatteryStatus{Percent: opts.percent, Charging: opts.charging})

	if opts.frames != "" {
		if err := os.MkdirAll(opts.frames, 0o755); err != nil {
			return fmt.Errorf("create frames directory: %w", err)
		}
	}

	index := 0
	var frameErr error
	scheduler.RunToEnd(frameStep, func() {
		if opts.frames == "" || frameErr != nil || !watchFace.Dirty() {
			return
		}
		path := filepath.Join(opts.frames, fmt.Sprintf("frame-%03d.png", index))
		frameErr = save(watchFace, opts.scale, path)
		index++
	})
	if frameErr != nil {
		return frameErr
	}
	if opts.frames != "" {
		log.Printf("wrote %d animation frames to %s", index, opts.frames)
	}

	if opts.tap {
		watchFace.HandleTap(face.AxisZ, 1)
	}
	if err := save(watchFace, opts.scale, opts.out); err != nil {
		return err
	}
	log.Printf("wrote %s", opts.out)
	return nil
}

func save(watchFace *face.Face, scale float64, path string) error {
	surface, err := raster.New(model.DisplayWidth, model.DisplayHeight, raster.Options{Scale: scale})
	if err != nil {
		return err
	}
	defer surface.Close()

	watchFace.Render(surface)
	if err := surface.Err(); err != nil {
		return err
	}
	return surface.SavePNG(path)
}
