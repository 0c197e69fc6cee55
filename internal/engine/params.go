// internal/engine/params.go
package engine

// Params — все настраиваемые константы симуляции. Исходные варианты
// движка расходились в значениях гравитации и скорости маятника,
// поэтому числа здесь — конфигурация, а не контракт.
type Params struct {
	PlayWidth   float64 // ширина игрового поля в мировых единицах
	BlockWidth  float64 // ширина базового блока
	BlockHeight float64
	BaseOffset  float64 // высота точки подвеса над вершиной башни

	RopeLength  float64
	SwingRadius float64 // горизонтальный радиус безопасности маятника

	SwingSpeedBase      float64 // рад/с
	SwingSpeedIncrement float64 // прибавка за каждую успешную посадку
	SwingSpeedMax       float64

	Gravity       float64 // единицы/с², положительная — вниз
	RotationDecay float64 // экспоненциальное затухание наклона при падении
	RotationSnap  float64 // порог в градусах, ниже которого наклон обнуляется

	DebrisPopSpeed  float64 // начальный подброс обломка вверх
	DebrisSpinSpeed float64 // градусы за эталонный кадр, знак случайный
	DebrisKillY     float64 // ниже этой высоты обломок удаляется

	FrameScale float64 // эталонный FPS для нормализации вращения обломков
	ColorCount int     // размер палитры для случайной метки цвета
}

// DefaultParams возвращает параметры по умолчанию.
func DefaultParams() Params {
	return Params{
		PlayWidth:           600,
		BlockWidth:          200,
		BlockHeight:         40,
		BaseOffset:          60,
		RopeLength:          320,
		SwingRadius:         250,
		SwingSpeedBase:      1.6,
		SwingSpeedIncrement: 0.12,
		SwingSpeedMax:       3.2,
		Gravity:             900,
		RotationDecay:       6,
		RotationSnap:        1,
		DebrisPopSpeed:      180,
		DebrisSpinSpeed:     3,
		DebrisKillY:         -100,
		FrameScale:          60,
		ColorCount:          6,
	}
}
