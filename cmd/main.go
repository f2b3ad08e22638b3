package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ksface/internal/core/face"
	"ksface/internal/core/frame"
	"ksface/internal/core/timekeeper"
	"ksface/internal/platform"
	"ksface/internal/storage"
	"ksface/internal/ui/animation"
	"ksface/internal/ui/preferences"
	"ksface/internal/ui/raster"
	"ksface/internal/ui/tray"
	"ksface/internal/ui/watch"
	"ksface/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "ksface"

func main() {
	debug := flag.Bool("debug", false, "log face events to stderr")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("io.ksface.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconNormal))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	engine := animation.New(ctx)

	watchWindow := watch.New(fyneApp, watch.Config{Title: "ksface", Scale: float32(settings.Scale)})

	logger := slog.New(slog.DiscardHandler)
	if *debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var watchFace *face.Face
	watchFace = face.New(face.Options{
		Logger: logger,
		OnDirty: func() {
			watchWindow.RequestDraw(watchFace)
		},
	})

	simulated := platform.NewSimulatedBattery(settings.SimulatedStatus())
	keeper := timekeeper.New(timekeeper.Config{TickInterval: time.Second})
	keeper.SetBatteryChecker(batteryProvider(settings, simulated))

	var trayManager *tray.Manager
	desktopApp, hasTray := fyneApp.(desktop.App)

	updateBattery := func(status face.BatteryChanged) {
		if trayManager != nil {
			trayManager.SetBattery(status.Status, settings.BatterySource == preferences.BatterySimulated)
		}
	}

	startup, err := keeper.Peek()
	if err != nil {
		if !errors.Is(err, timekeeper.ErrBatteryUnsupported) {
			log.Printf("read battery: %v", err)
		}
		log.Printf("system battery unavailable, using simulated battery")
		keeper.SetBatteryChecker(simulated)
		startup, _ = simulated.Battery()
	}

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		watchWindow.UpdateConfig(watch.Config{Scale: float32(settings.Scale)})
		simulated.Set(settings.SimulatedStatus())
		keeper.SetBatteryChecker(batteryProvider(settings, simulated))
		status, err := keeper.Peek()
		if err != nil {
			log.Printf("read battery: %v", err)
			if trayManager != nil {
				trayManager.SetBatteryUnavailable()
			}
			return
		}
		watchFace.HandleBattery(status)
		updateBattery(face.BatteryChanged{Status: status})
	})

	if hasTray {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShowFace: watchWindow.Show,
			OnShowSeconds: func() {
				watchFace.HandleTap(face.AxisZ, 1)
			},
			OnPreferences: prefsWindow.Show,
			OnSnapshot: func() {
				path, err := saveSnapshot(watchFace.Frame(), settings.Scale)
				if err != nil {
					log.Printf("save snapshot: %v", err)
					return
				}
				log.Printf("snapshot saved to %s", path)
			},
			OnQuit: fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(trayIcon(startup.Charging))
		watchWindow.Window().SetCloseIntercept(watchWindow.Hide)
	}

	watchWindow.SetOnTap(func() {
		watchFace.HandleTap(face.AxisZ, 1)
	})
	guard.SetOnActivate(func() {
		fyne.Do(watchWindow.Show)
	})

	events := keeper.Subscribe(2 * timekeeper.MaxCatchUp)
	go func() {
		for event := range events {
			fyne.Do(func() {
				watchFace.Dispatch(event)
				if changed, ok := event.(face.BatteryChanged); ok {
					updateBattery(changed)
					if hasTray {
						desktopApp.SetSystemTrayIcon(trayIcon(changed.Status.Charging))
					}
				}
			})
		}
	}()

	fyneApp.Lifecycle().SetOnStarted(func() {
		watchFace.HandleTick(time.Now())
		watchFace.Start(engine, startup)
		updateBattery(face.BatteryChanged{Status: startup})
		keeper.Start()
	})
	fyneApp.Lifecycle().SetOnStopped(func() {
		keeper.Stop()
		engine.Stop()
	})

	watchWindow.Draw(watchFace.Render)
	watchWindow.Show()
	fyneApp.Run()
}

func batteryProvider(settings preferences.Settings, simulated *platform.SimulatedBattery) platform.BatteryProvider {
	if settings.BatterySource == preferences.BatterySimulated {
		return simulated
	}
	return platform.NewBatteryProvider()
}

func trayIcon(charging bool) fyne.Resource {
	if charging {
		return resources.MustIcon(resources.IconCharging)
	}
	return resources.MustIcon(resources.IconNormal)
}

func saveSnapshot(f frame.Frame, scale float64) (string, error) {
	configPath, err := storage.ResolveConfigPath(appName)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(filepath.Dir(configPath), "snapshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot directory: %w", err)
	}

	surface, err := raster.Render(f, raster.Options{Scale: scale})
	if err != nil {
		return "", err
	}
	defer surface.Close()

	path := filepath.Join(dir, fmt.Sprintf("ksface-%s.png", time.Now().Format("20060102-150405")))
	if err := surface.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}
