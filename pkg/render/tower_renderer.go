// pkg/render/tower_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-tower-stacker/internal/config"
	"go-tower-stacker/internal/engine"
)

// TowerRenderer рисует мир движка: землю, башню, верёвку с активным
// блоком и обломки. Движок живёт в координатах «от земли вверх»,
// экран — «от верхнего края вниз»; перевод и слежение камеры за
// вершиной башни — целиком забота рендерера.
type TowerRenderer struct {
	screenWidth  int
	screenHeight int
	whiteImg     *ebiten.Image
}

func NewTowerRenderer(screenWidth, screenHeight int) *TowerRenderer {
	whiteImg := ebiten.NewImage(1, 1)
	whiteImg.Fill(color.White)

	return &TowerRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		whiteImg:     whiteImg,
	}
}

// cameraY — нижняя граница видимого мира. Пока башня низкая, камера
// стоит на земле; дальше она держит вершину на фиксированной доле
// высоты экрана.
func (r *TowerRenderer) cameraY(eng *engine.Engine) float64 {
	top := float64(len(eng.Stack())) * eng.Params().BlockHeight
	follow := float64(r.screenHeight) * config.CameraFollowRatio
	if top <= follow {
		return 0
	}
	return top - follow
}

func (r *TowerRenderer) toScreenY(worldY, camY float64) float64 {
	return float64(r.screenHeight) - (worldY - camY)
}

// Draw отрисовывает полный кадр симуляции.
func (r *TowerRenderer) Draw(screen *ebiten.Image, eng *engine.Engine) {
	screen.Fill(config.BackgroundColor)
	camY := r.cameraY(eng)
	blockH := eng.Params().BlockHeight

	// Земля.
	groundY := float32(r.toScreenY(0, camY))
	if groundY < float32(r.screenHeight) {
		vector.DrawFilledRect(screen, 0, groundY, float32(r.screenWidth), float32(r.screenHeight)-groundY, config.GroundColor, false)
	}

	// Башня.
	for _, b := range eng.Stack() {
		r.drawStaticBlock(screen, b, blockH, camY)
	}

	// Верёвка и активный блок.
	if cur, ok := eng.CurrentBlock(); ok {
		if eng.State() == engine.StateSwinging {
			vector.StrokeLine(screen,
				float32(eng.PivotX()), float32(r.toScreenY(eng.PivotY(), camY)),
				float32(cur.CenterX()), float32(r.toScreenY(cur.Y+blockH, camY)),
				config.RopeThickness, config.RopeColor, true)
		}
		r.drawRotatedBlock(screen, cur, blockH, camY, BlockColor(cur.Color))
	}

	// Обломки: те же блоки, только притемнённые.
	for _, d := range eng.Debris() {
		r.drawRotatedBlock(screen, d, blockH, camY, DarkenColor(BlockColor(d.Color), config.DebrisDarkenBy))
	}
}

func (r *TowerRenderer) drawStaticBlock(screen *ebiten.Image, b engine.Block, blockH, camY float64) {
	x := float32(b.X)
	y := float32(r.toScreenY(b.Y+blockH, camY))
	w := float32(b.Width)
	h := float32(blockH)

	vector.DrawFilledRect(screen, x, y, w, h, BlockColor(b.Color), false)
	vector.StrokeRect(screen, x, y, w, h, config.BlockStroke, config.BlockStrokeCol, false)
}

// drawRotatedBlock рисует блок с наклоном: единичный белый пиксель
// растягивается до размеров блока и поворачивается вокруг центра.
func (r *TowerRenderer) drawRotatedBlock(screen *ebiten.Image, b engine.Block, blockH, camY float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Width, blockH)
	op.GeoM.Translate(-b.Width/2, -blockH/2)
	// Экранная ось Y направлена вниз, поэтому знак угла меняется.
	op.GeoM.Rotate(-b.Rotation * math.Pi / 180)
	op.GeoM.Translate(b.CenterX(), r.toScreenY(b.Y+blockH/2, camY))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(r.whiteImg, op)
}
