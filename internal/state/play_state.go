// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-tower-stacker/internal/app"
)

// PlayState — игровое состояние: весь ввод раунда собирается здесь и
// превращается в вызовы методов игры.
type PlayState struct {
	sm       *StateMachine
	game     *game.Game
	audioCtx *audio.Context
}

func NewPlayState(sm *StateMachine, audioCtx *audio.Context) (*PlayState, error) {
	g, err := game.NewGame(audioCtx)
	if err != nil {
		return nil, err
	}
	return &PlayState{sm: sm, game: g, audioCtx: audioCtx}, nil
}

func (p *PlayState) Enter() {
	p.game.Engine.Start()
}

func (p *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.game.HandleAction()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.game.ToggleMute()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(NewMenuState(p.sm, p.audioCtx))
		return
	}

	p.game.Update(deltaTime)
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.game.Draw(screen)
}

func (p *PlayState) Exit() {
	// Ничего не делаем при выходе
}
