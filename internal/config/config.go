// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 600
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	HighScorePath = "highscore.json"

	// UI
	ScoreOffsetX  = 20
	ScoreOffsetY  = 40
	HintOffsetY   = 60
	ScoreFontSize = 18

	// Камера начинает подниматься, когда башня выше этой доли экрана.
	CameraFollowRatio = 0.45

	RopeThickness  = 2.0
	BlockStroke    = 2.0
	DebrisDarkenBy = 0.65
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GroundColor     = color.RGBA{70, 100, 120, 220}
	RopeColor       = color.RGBA{240, 240, 240, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	GameOverColor   = color.RGBA{220, 60, 60, 255}
	BlockStrokeCol  = color.RGBA{255, 255, 255, 255}

	// Палитра блоков; метка цвета из движка — индекс сюда.
	BlockPalette = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{50, 255, 50, 255},  // Green
		{50, 100, 255, 255}, // Blue
		{180, 50, 230, 255}, // Purple
		{255, 215, 0, 255},  // Gold
		{70, 130, 180, 220}, // Steel
	}
)
