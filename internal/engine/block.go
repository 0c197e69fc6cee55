// internal/engine/block.go
package engine

// Block представляет один прямоугольник башни: лежащий в стеке,
// висящий на маятнике или падающий обломок. Координаты считаются
// от земли вверх, X — левый край.
type Block struct {
	X     float64
	Y     float64
	Width float64

	// Level — индекс в стеке на момент создания. Используется для
	// подбора цвета и для сопоставления обломка с его блоком.
	Level int

	// Color — непрозрачная для движка визуальная метка,
	// интерпретируется только слоем отрисовки.
	Color int

	// Переходная физика.
	SpeedY        float64 // вертикальная скорость, положительная — вниз
	Rotation      float64 // визуальный наклон в градусах
	RotationSpeed float64 // скорость вращения обломка, градусы за эталонный кадр
	Angle         float64 // текущий угол маятника в радианах (только для активного блока)
}

// Left returns the left edge of the block's horizontal span.
func (b Block) Left() float64 { return b.X }

// Right returns the right edge of the block's horizontal span.
func (b Block) Right() float64 { return b.X + b.Width }

// CenterX returns the horizontal center point of the block.
func (b Block) CenterX() float64 { return b.X + b.Width/2 }
