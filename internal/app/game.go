// internal/app/game.go
package app

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"go-tower-stacker/internal/config"
	"go-tower-stacker/internal/engine"
	"go-tower-stacker/internal/event"
	"go-tower-stacker/internal/score"
	"go-tower-stacker/internal/sound"
	"go-tower-stacker/internal/ui"
	"go-tower-stacker/internal/utils"
	"go-tower-stacker/pkg/render"
)

// Game связывает чистый движок со слоем представления: отрисовкой,
// звуком и сохранением рекорда. Раз в кадр он продвигает симуляцию,
// забирает накопленные события и раздаёт их по назначению. Сам движок
// про существование этого слоя не знает.
type Game struct {
	Engine     *engine.Engine
	Renderer   *render.TowerRenderer
	Scores     *score.Store
	Sound      *sound.Player
	ScoreLabel *ui.ScoreLabel
	Hint       *ui.HintLabel
	Rng        *utils.PRNGService
}

// NewGame собирает игру. Аудио-контекст создаётся один раз на процесс,
// поэтому приходит снаружи.
func NewGame(audioCtx *audio.Context) (*Game, error) {
	rng := utils.NewPRNGService(0)

	scores := score.NewStore(config.HighScorePath)
	if err := scores.Load(); err != nil {
		// Рекорд не критичен: играем с нуля.
		log.Printf("high score load failed: %v", err)
	}

	scoreLabel, err := ui.NewScoreLabel()
	if err != nil {
		return nil, err
	}
	hint, err := ui.NewHintLabel()
	if err != nil {
		return nil, err
	}

	return &Game{
		Engine:     engine.New(engine.DefaultParams(), rng),
		Renderer:   render.NewTowerRenderer(config.ScreenWidth, config.ScreenHeight),
		Scores:     scores,
		Sound:      sound.NewPlayer(audioCtx),
		ScoreLabel: scoreLabel,
		Hint:       hint,
		Rng:        rng,
	}, nil
}

// Update продвигает симуляцию и разбирает её события.
// dt уже обрезан вызывающим циклом (config.MaxDeltaTime).
func (g *Game) Update(dt float64) {
	g.Engine.Tick(dt)

	for _, ev := range g.Engine.Drain() {
		switch ev.Type {
		case event.BlockLanded:
			g.Sound.Land()
		case event.TinyBlockLanded:
			g.Sound.Tiny()
		case event.GameOver:
			g.Sound.GameOver()
			if _, err := g.Scores.Update(g.Engine.Score()); err != nil {
				log.Printf("high score save failed: %v", err)
			}
		}
	}
}

// HandleAction — единственная игровая кнопка: старт из Ready,
// сброс блока из Swinging, в остальных состояниях — ничего.
func (g *Game) HandleAction() {
	switch g.Engine.State() {
	case engine.StateReady:
		g.Engine.Start()
	case engine.StateSwinging:
		g.Engine.Drop()
	}
}

// Restart начинает новый раунд с чистой башней.
func (g *Game) Restart() {
	g.Engine.Reset()
	g.Engine.Start()
}

// ToggleMute переключает звук.
func (g *Game) ToggleMute() {
	g.Sound.ToggleMute()
}

// Draw отрисовывает мир и интерфейс.
func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, g.Engine)
	g.ScoreLabel.Draw(screen, g.Engine.Score(), g.Scores.Best())
	g.Hint.Draw(screen, g.Engine.State())
}
