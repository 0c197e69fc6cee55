// internal/ui/score_label.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-tower-stacker/internal/config"
)

// ScoreLabel — текущий счёт и рекорд в верхнем левом углу.
type ScoreLabel struct {
	face font.Face
}

func NewScoreLabel() (*ScoreLabel, error) {
	face, err := newFace(config.ScoreFontSize)
	if err != nil {
		return nil, err
	}
	return &ScoreLabel{face: face}, nil
}

// Draw отрисовывает метку счёта.
func (l *ScoreLabel) Draw(screen *ebiten.Image, score, best int) {
	msg := fmt.Sprintf("Score: %d   Best: %d", score, best)
	text.Draw(screen, msg, l.face, config.ScoreOffsetX, config.ScoreOffsetY, config.TextLightColor)
}
