// internal/engine/engine.go
package engine

import (
	"math"

	"go-tower-stacker/internal/event"
	"go-tower-stacker/internal/utils"
)

// State — состояние игрового автомата
type State int

const (
	StateReady State = iota
	StateSwinging
	StateDropping
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateSwinging:
		return "Swinging"
	case StateDropping:
		return "Dropping"
	case StateGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Engine — чистая симуляция башни: маятник, падение, обрезка по
// пересечению и обломки. Движок однопоточный, все методы синхронные;
// внешний цикл зовёт Tick раз в кадр и забирает события через Drain.
type Engine struct {
	params Params
	rng    *utils.PRNGService
	events *event.Queue

	stack   []Block
	debris  []Block
	current Block
	state   State

	swingSpeed float64
	phase      float64 // накопленная фаза маятника
}

// New создает движок и сразу приводит его в состояние Ready.
// Если rng равен nil, используется генератор со случайным сидом.
func New(params Params, rng *utils.PRNGService) *Engine {
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	e := &Engine{
		params: params,
		rng:    rng,
		events: event.NewQueue(),
	}
	e.Reset()
	return e
}

// Reset очищает башню и обломки, кладёт базовый блок и возвращает
// движок в Ready. Безопасен из любого состояния, идемпотентен.
func (e *Engine) Reset() {
	base := Block{
		X:     (e.params.PlayWidth - e.params.BlockWidth) / 2,
		Y:     0,
		Width: e.params.BlockWidth,
		Level: 0,
		Color: e.rng.Intn(e.params.ColorCount),
	}
	e.stack = e.stack[:0]
	e.stack = append(e.stack, base)
	e.debris = nil
	e.current = Block{}
	e.swingSpeed = e.params.SwingSpeedBase
	e.phase = 0
	e.setState(StateReady)
}

// Start запускает раунд: подвешивает первый блок и переходит в
// Swinging. Вне Ready — no-op.
func (e *Engine) Start() {
	if e.state != StateReady {
		return
	}
	e.spawnBlock()
	e.setState(StateSwinging)
}

// Drop отпускает качающийся блок. Вне Swinging — no-op.
func (e *Engine) Drop() {
	if e.state != StateSwinging {
		return
	}
	e.current.SpeedY = 0
	e.setState(StateDropping)
}

// Tick продвигает симуляцию на dt секунд. Обрезать слишком большой
// dt обязан вызывающий цикл (см. config.MaxDeltaTime); движок лишь
// требует dt > 0. В Ready и GameOver активный блок и стек заморожены,
// но уже существующие обломки продолжают падать и истекают — так на
// экране конца игры не висит застывший в воздухе мусор.
func (e *Engine) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	switch e.state {
	case StateSwinging:
		e.tickSwing(dt)
	case StateDropping:
		e.tickDrop(dt)
	}
	e.tickDebris(dt)
}

// Drain возвращает накопленные с прошлого кадра события.
func (e *Engine) Drain() []event.Event {
	return e.events.Drain()
}

// Stack возвращает блоки башни снизу вверх. Срез принадлежит движку,
// вызывающий не должен его изменять.
func (e *Engine) Stack() []Block { return e.stack }

// Debris возвращает живые обломки в произвольном порядке.
func (e *Engine) Debris() []Block { return e.debris }

// CurrentBlock возвращает активный блок. ok == false в Ready и
// GameOver, когда активного блока нет.
func (e *Engine) CurrentBlock() (Block, bool) {
	if e.state == StateSwinging || e.state == StateDropping {
		return e.current, true
	}
	return Block{}, false
}

// State возвращает текущее состояние автомата.
func (e *Engine) State() State { return e.state }

// Score — количество успешно посаженных блоков (базовый не в счёт).
func (e *Engine) Score() int { return len(e.stack) - 1 }

// SwingSpeed возвращает текущую угловую скорость маятника.
func (e *Engine) SwingSpeed() float64 { return e.swingSpeed }

// Params возвращает параметры, с которыми создан движок.
func (e *Engine) Params() Params { return e.params }

// MaxSwingAngle — амплитуда маятника, выведенная из длины верёвки и
// радиуса безопасности: asin(min(R/rope, 1)). Блок никогда не
// вылетает за видимую ширину поля, какой бы ни была верёвка.
func (e *Engine) MaxSwingAngle() float64 {
	ratio := e.params.SwingRadius / e.params.RopeLength
	if ratio > 1 {
		ratio = 1
	}
	return math.Asin(ratio)
}

// PivotX — горизонталь точки подвеса (центр поля).
func (e *Engine) PivotX() float64 { return e.params.PlayWidth / 2 }

// PivotY — высота точки подвеса; растёт вместе с башней.
func (e *Engine) PivotY() float64 {
	return float64(len(e.stack))*e.params.BlockHeight + e.params.RopeLength + e.params.BaseOffset
}

// stackTop — высота верхней грани башни.
func (e *Engine) stackTop() float64 {
	return float64(len(e.stack)) * e.params.BlockHeight
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	e.events.Push(event.StateChanged, s)
}

// spawnBlock подвешивает следующий блок под точку подвеса.
// Ширина наследуется от вершины башни.
func (e *Engine) spawnBlock() {
	top := e.stack[len(e.stack)-1]
	b := Block{
		Width: top.Width,
		Level: len(e.stack),
		Color: e.rng.Intn(e.params.ColorCount),
	}
	b.X = e.PivotX() - b.Width/2
	b.Y = e.PivotY() - e.params.RopeLength - e.params.BlockHeight
	e.current = b
}

func (e *Engine) tickSwing(dt float64) {
	e.phase += dt * e.swingSpeed
	maxAngle := e.MaxSwingAngle()
	angle := math.Sin(e.phase) * maxAngle

	e.current.Angle = angle
	e.current.X = e.PivotX() + e.params.RopeLength*math.Sin(angle) - e.current.Width/2
	e.current.Y = e.PivotY() - e.params.RopeLength*math.Cos(angle) - e.params.BlockHeight
	e.current.Rotation = angle * 180 / math.Pi
}

func (e *Engine) tickDrop(dt float64) {
	e.current.SpeedY += e.params.Gravity * dt
	e.current.Y -= e.current.SpeedY * dt

	// Наклон экспоненциально гаснет, у самого нуля — защёлкивается.
	e.current.Rotation *= math.Exp(-e.params.RotationDecay * dt)
	if math.Abs(e.current.Rotation) < e.params.RotationSnap {
		e.current.Rotation = 0
	}

	if e.current.Y <= e.stackTop() {
		e.current.Y = e.stackTop()
		e.current.Rotation = 0
		e.resolveLanding()
	}
}

// resolveLanding обрезает активный блок по пересечению с вершиной
// башни, порождает обломок для отрезанной части и либо подвешивает
// следующий блок, либо заканчивает игру.
func (e *Engine) resolveLanding() {
	prev := e.stack[len(e.stack)-1]
	overlapStart := math.Max(e.current.Left(), prev.Left())
	overlapEnd := math.Min(e.current.Right(), prev.Right())
	overlap := overlapEnd - overlapStart

	if overlap <= 0 {
		// Промах: блок целиком превращается в обломок и улетает вниз.
		miss := e.current
		miss.RotationSpeed = e.params.DebrisSpinSpeed * e.rng.Sign()
		e.debris = append(e.debris, miss)
		e.current = Block{}
		e.setState(StateGameOver)
		e.events.Push(event.GameOver, e.Score())
		return
	}

	cutWidth := e.current.Width - overlap
	leftCut := e.current.Left() < prev.Left()

	landed := e.current
	landed.X = overlapStart
	landed.Width = overlap
	landed.SpeedY = 0
	landed.Angle = 0
	e.stack = append(e.stack, landed)

	if cutWidth > 0 {
		scrap := Block{
			Y:             landed.Y,
			Width:         cutWidth,
			Level:         landed.Level,
			Color:         landed.Color,
			SpeedY:        -e.params.DebrisPopSpeed,
			RotationSpeed: e.params.DebrisSpinSpeed * e.rng.Sign(),
		}
		if leftCut {
			scrap.X = e.current.Left()
		} else {
			scrap.X = prev.Right()
		}
		e.debris = append(e.debris, scrap)
	}

	e.swingSpeed = math.Min(e.swingSpeed+e.params.SwingSpeedIncrement, e.params.SwingSpeedMax)

	e.events.Push(event.BlockLanded, e.Score())
	if overlap <= prev.Width/2 {
		e.events.Push(event.TinyBlockLanded, e.Score())
	}

	e.spawnBlock()
	e.setState(StateSwinging)
}

// tickDebris интегрирует гравитацию и вращение обломков и удаляет
// улетевшие за нижнюю границу.
func (e *Engine) tickDebris(dt float64) {
	if len(e.debris) == 0 {
		return
	}
	alive := e.debris[:0]
	for i := range e.debris {
		d := e.debris[i]
		d.SpeedY += e.params.Gravity * dt
		d.Y -= d.SpeedY * dt
		d.Rotation += d.RotationSpeed * dt * e.params.FrameScale
		if d.Y >= e.params.DebrisKillY {
			alive = append(alive, d)
		}
	}
	e.debris = alive
}
