// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-tower-stacker/internal/config"
	"go-tower-stacker/internal/sound"
	"go-tower-stacker/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime // защита от зависших кадров
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	audioCtx := audio.NewContext(sound.SampleRate)

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, audioCtx))

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Stacker")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
