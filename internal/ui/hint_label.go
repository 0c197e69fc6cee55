// internal/ui/hint_label.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-tower-stacker/internal/config"
	"go-tower-stacker/internal/engine"
)

// HintLabel — контекстная подсказка под счётом: что нажать в текущем
// состоянии движка.
type HintLabel struct {
	face font.Face
}

func NewHintLabel() (*HintLabel, error) {
	face, err := newFace(config.ScoreFontSize)
	if err != nil {
		return nil, err
	}
	return &HintLabel{face: face}, nil
}

// Draw отрисовывает подсказку для состояния движка.
func (l *HintLabel) Draw(screen *ebiten.Image, state engine.State) {
	var msg string
	var col color.Color = config.TextLightColor

	switch state {
	case engine.StateReady:
		msg = "Press SPACE to start"
	case engine.StateSwinging:
		msg = "SPACE — drop the block"
	case engine.StateGameOver:
		msg = "GAME OVER — press R to restart"
		col = config.GameOverColor
	default:
		return
	}

	// Центрируем по ширине экрана.
	bounds := text.BoundString(l.face, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, msg, l.face, x, config.ScreenHeight-config.HintOffsetY, col)
}
