// Command ksface-term runs the watch face in a terminal.
//
// Keys: space taps, +/- change the simulated battery, c toggles charging,
// q quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"ksface/internal/core/animation"
	"ksface/internal/core/face"
	"ksface/internal/core/model"
	"ksface/internal/core/timekeeper"
	"ksface/internal/platform"
	"ksface/internal/ui/raster"
	"ksface/internal/ui/term"
)

const frameInterval = 33 * time.Millisecond

func main() {
	simulate := flag.Bool("simulate", false, "use a simulated battery")
	percent := flag.Int("battery", 80, "simulated battery percent")
	logPath := flag.String("log", "", "write face debug records to this file")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer file.Close()
		logger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	simulated := platform.NewSimulatedBattery(model.BatteryStatus{Percent: *percent})
	keeper := timekeeper.New(timekeeper.Config{TickInterval: time.Second})
	usingSimulated := *simulate
	if usingSimulated {
		keeper.SetBatteryChecker(simulated)
	} else {
		keeper.SetBatteryChecker(platform.NewBatteryProvider())
	}
	startup, err := keeper.Peek()
	if err != nil {
		if !errors.Is(err, timekeeper.ErrBatteryUnsupported) {
			log.Printf("read battery: %v", err)
		}
		usingSimulated = true
		keeper.SetBatteryChecker(simulated)
		startup, _ = simulated.Battery()
	}

	screen, err := term.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}
	defer screen.Fini()

	host := &host{
		screen:    screen,
		face:      face.New(face.Options{Logger: logger}),
		scheduler: animation.NewClocked(),
		simulated: simulated,
		simulate:  usingSimulated,
	}
	if err := host.run(keeper, startup); err != nil {
		screen.Fini()
		log.Fatalf("ksface-term: %v", err)
	}
}

type host struct {
	screen    *term.Screen
	face      *face.Face
	scheduler *animation.Clocked
	simulated *platform.SimulatedBattery
	simulate  bool
}

func (host *host) run(keeper *timekeeper.TimeKeeper, startup model.BatteryStatus) error {
	events := keeper.Subscribe(2 * timekeeper.MaxCatchUp)
	keeper.Start()
	defer keeper.Stop()

	host.face.HandleTick(time.Now())
	host.face.Start(host.scheduler, startup)

	input := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := host.screen.PollEvent()
			if ev == nil {
				close(input)
				return
			}
			input <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		if host.face.Dirty() {
			if err := host.draw(); err != nil {
				return err
			}
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			host.face.Dispatch(ev)
		case ev, ok := <-input:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				host.screen.Sync()
				if err := host.draw(); err != nil {
					return err
				}
				continue
			}
			if host.handle(term.EventAction(ev)) {
				return nil
			}
		case now := <-ticker.C:
			if host.scheduler.Pending() {
				host.scheduler.Advance(now.Sub(last))
			}
			last = now
		}
	}
}

func (host *host) handle(action term.Action) bool {
	switch action {
	case term.ActionQuit:
		return true
	case term.ActionTap:
		host.face.HandleTap(face.AxisZ, 1)
	case term.ActionBatteryUp, term.ActionBatteryDown, term.ActionToggleCharging:
		if !host.simulate {
			return false
		}
		var status model.BatteryStatus
		switch action {
		case term.ActionBatteryUp:
			status = host.simulated.Adjust(10)
		case term.ActionBatteryDown:
			status = host.simulated.Adjust(-10)
		default:
			status = host.simulated.ToggleCharging()
		}
		host.face.HandleBattery(status)
	}
	return false
}

func (host *host) draw() error {
	surface, err := raster.New(model.DisplayWidth, model.DisplayHeight, raster.Options{})
	if err != nil {
		return err
	}
	defer surface.Close()

	host.face.Render(surface)
	if err := surface.Err(); err != nil {
		return err
	}
	host.screen.SetStatus(host.status())
	host.screen.Draw(surface.Image())
	return nil
}

func (host *host) status() string {
	battery := host.face.State().Battery
	line := fmt.Sprintf(" battery %d%%", battery.Percent)
	if battery.Charging {
		line += " charging"
	}
	if host.simulate {
		line += " (simulated: +/- c)"
	}
	return line + "  space: seconds  q: quit"
}
