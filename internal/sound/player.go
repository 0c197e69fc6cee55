// internal/sound/player.go
package sound

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Player проигрывает синтезированные на старте звуки игры через
// аудио-контекст ebiten. Никаких файлов ассетов: все сигналы
// рендерятся в PCM один раз при создании.
type Player struct {
	muted bool

	land *audio.Player
	tiny *audio.Player
	over *audio.Player
}

// NewPlayer рендерит все звуковые сигналы и готовит плееры.
// Контекст должен быть создан с частотой SampleRate.
func NewPlayer(ctx *audio.Context) *Player {
	landPCM := renderTone(660, 0.09, 0.005, 0.05, 0.5)
	tinyPCM := renderTone(990, 0.12, 0.005, 0.06, 0.5)
	overPCM := renderSequence(
		renderTone(330, 0.15, 0.005, 0.04, 0.5),
		renderTone(220, 0.3, 0.005, 0.2, 0.5),
	)

	return &Player{
		land: ctx.NewPlayerFromBytes(landPCM),
		tiny: ctx.NewPlayerFromBytes(tinyPCM),
		over: ctx.NewPlayerFromBytes(overPCM),
	}
}

// Land — обычная посадка блока.
func (p *Player) Land() { p.play(p.land) }

// Tiny — посадка «на волоске», осталась половина блока или меньше.
func (p *Player) Tiny() { p.play(p.tiny) }

// GameOver — джингл промаха.
func (p *Player) GameOver() { p.play(p.over) }

// ToggleMute включает/выключает звук, возвращает новое состояние.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

func (p *Player) play(ap *audio.Player) {
	if p.muted || ap == nil {
		return
	}
	ap.Rewind()
	ap.Play()
}
