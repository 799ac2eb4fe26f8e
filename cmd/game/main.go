// cmd/game/main.go
package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

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

// AppGame adapts the state machine to ebiten's game loop. ebiten calls
// Update at a fixed rate, one simulation tick per call.
type AppGame struct {
	stateMachine *state.StateMachine
	session      *state.Session
	fonts        *render.FontCache
}

func (a *AppGame) Update() error {
	if a.session.QuitRequested() {
		return ebiten.Termination
	}
	a.stateMachine.Update(input.Frame{Held: input.Held(), Pressed: input.JustPressed()})
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(render.NewEbitenSurface(screen, a.fonts))
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.ParseSettings("robot-survivor", os.Args[1:])
	if err != nil {
		logger.Log.WithError(err).Fatal("invalid settings")
	}
	logOut, closeLog, err := logger.Output(settings.LogFile, os.Stdout)
	if err != nil {
		logger.Log.WithError(err).Fatal("open log output")
	}
	defer closeLog()
	logger.InitWith(settings.LogLevel, settings.LogFormat, logOut)
	log := logger.For("main")

	rng := utils.NewPRNGService(settings.Seed)
	log.WithField("seed", rng.Seed()).Info("starting")

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) {
		log.WithFields(logrus.Fields{"type": e.Type, "data": e.Data}).Debug("event")
	}))

	sound := audio.NewSoundManager(settings.Mute)
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	dispatcher.SubscribeAll(sound)

	fonts, err := render.NewFontCache()
	if err != nil {
		log.WithError(err).Fatal("load fonts")
	}

	session := state.NewSession(app.NewGame(rng, dispatcher))
	a := &AppGame{
		stateMachine: state.Start(session, settings.StartLevel, settings.SkipMenu),
		session:      session,
		fonts:        fonts,
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.Scale), int(config.ScreenHeight*settings.Scale))
	ebiten.SetWindowTitle("Robot Buddy Survivor")
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Fatal("game loop failed")
	}
}
