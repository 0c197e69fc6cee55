// internal/state/menu_state.go
package state

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-tower-stacker/internal/config"
)

// MenuState — титульный экран
type MenuState struct {
	sm       *StateMachine
	audioCtx *audio.Context
}

func NewMenuState(sm *StateMachine, audioCtx *audio.Context) *MenuState {
	return &MenuState{sm: sm, audioCtx: audioCtx}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ps, err := NewPlayState(m.sm, m.audioCtx)
		if err != nil {
			log.Fatal(err)
		}
		m.sm.SetState(ps)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ebitenutil.DebugPrintAt(screen, "TOWER STACKER", config.ScreenWidth/2-52, config.ScreenHeight/2-20)
	ebitenutil.DebugPrintAt(screen, "press SPACE", config.ScreenWidth/2-44, config.ScreenHeight/2+4)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
