// cmd/tui/main.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-robot-survivor/internal/app"
	"go-robot-survivor/internal/audio"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/state"
	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/logger"
	"go-robot-survivor/pkg/render"
)

// holdTicks is how long a key stays held after its last press or repeat.
// Terminals never report key releases.
const holdTicks = 20

func main() {
	settings, err := config.ParseSettings("robot-survivor-tui", os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	// The terminal belongs to the game, so logs are dropped unless a file is given.
	logOut, closeLog, err := logger.Output(settings.LogFile, io.Discard)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()
	logger.InitWith(settings.LogLevel, settings.LogFormat, logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, settings); err != nil {
		logger.For("main").WithError(err).Error("exiting")
		os.Exit(1)
	}
}

func run(ctx context.Context, settings config.Settings) error {
	log := logger.For("tui")

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	rng := utils.NewPRNGService(settings.Seed)
	log.WithField("seed", rng.Seed()).Info("starting")

	dispatcher := event.NewDispatcher()
	sound := audio.NewSoundManager(settings.Mute)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	dispatcher.SubscribeAll(sound)

	session := state.NewSession(app.NewGame(rng, dispatcher))
	sm := state.Start(session, settings.StartLevel, settings.SkipMenu)
	surface := render.NewTcellSurface(screen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	holder := input.NewHolder(holdTicks)
	var pressed input.Set
	ticker := time.NewTicker(config.TickMs * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				surface.Resize()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if a, ok := input.TerminalAction(ev); ok {
					holder.Press(a)
					pressed = pressed.With(a)
				}
			}
		case <-ticker.C:
			sm.Update(input.Frame{Held: holder.Held(), Pressed: pressed})
			pressed = 0
			holder.Tick()
			if session.QuitRequested() {
				return nil
			}
			screen.Clear()
			sm.Draw(surface)
			screen.Show()
		}
	}
}
