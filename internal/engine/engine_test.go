// internal/engine/engine_test.go
package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-tower-stacker/internal/event"
	"go-tower-stacker/internal/utils"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return New(DefaultParams(), utils.NewPRNGService(1))
}

func drainTypes(e *Engine) []event.EventType {
	var types []event.EventType
	for _, ev := range e.Drain() {
		types = append(types, ev.Type)
	}
	return types
}

func TestResetInitialState(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, StateReady, e.State())
	require.Len(t, e.Stack(), 1)
	assert.Empty(t, e.Debris())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 0, e.Stack()[0].Level)
	assert.Greater(t, e.Stack()[0].Width, 0.0)

	_, ok := e.CurrentBlock()
	assert.False(t, ok, "no active block while Ready")
}

func TestResetIsIdempotentFromAnyState(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Drop()
	e.Reset()
	e.Reset()

	assert.Equal(t, StateReady, e.State())
	assert.Len(t, e.Stack(), 1)
	assert.Empty(t, e.Debris())
	assert.Equal(t, e.Params().SwingSpeedBase, e.SwingSpeed())
}

func TestStartSpawnsFirstBlock(t *testing.T) {
	e := newTestEngine(t)
	e.Drain()

	e.Start()

	assert.Equal(t, StateSwinging, e.State())
	cur, ok := e.CurrentBlock()
	require.True(t, ok)
	assert.Equal(t, e.Stack()[0].Width, cur.Width, "width inherited from the base block")
	assert.Equal(t, 1, cur.Level)
	assert.Contains(t, drainTypes(e), event.StateChanged)
}

func TestStartWhileSwingingIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Tick(0.1)
	before, _ := e.CurrentBlock()
	e.Drain()

	e.Start()

	assert.Equal(t, StateSwinging, e.State())
	after, _ := e.CurrentBlock()
	assert.Equal(t, before, after)
	assert.Empty(t, e.Drain())
}

func TestDropOnlyWhileSwinging(t *testing.T) {
	e := newTestEngine(t)

	e.Drop()
	assert.Equal(t, StateReady, e.State())

	e.Start()
	e.Drop()
	assert.Equal(t, StateDropping, e.State())

	e.Drop()
	assert.Equal(t, StateDropping, e.State())
}

func TestSwingAngleStaysWithinAmplitude(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	maxAngle := e.MaxSwingAngle()

	for i := 0; i < 2000; i++ {
		e.Tick(0.016)
		cur, ok := e.CurrentBlock()
		require.True(t, ok)
		assert.LessOrEqual(t, math.Abs(cur.Angle), maxAngle+1e-9)
	}
}

func TestSwingKeepsBlockInsideSafetyRadius(t *testing.T) {
	e := newTestEngine(t)
	e.Start()

	for i := 0; i < 500; i++ {
		e.Tick(0.02)
		cur, _ := e.CurrentBlock()
		offset := cur.CenterX() - e.PivotX()
		assert.LessOrEqual(t, math.Abs(offset), e.Params().SwingRadius+1e-9)
	}
}

func TestPerfectLandingProducesNoDebris(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Drain()
	base := e.Stack()[0]

	e.state = StateDropping
	e.current.X = base.X
	e.current.Y = e.stackTop()
	e.resolveLanding()

	require.Len(t, e.Stack(), 2)
	assert.Empty(t, e.Debris())
	assert.Equal(t, base.Width, e.Stack()[1].Width)
	assert.Equal(t, StateSwinging, e.State())
	assert.Equal(t, 1, e.Score())

	types := drainTypes(e)
	assert.Contains(t, types, event.BlockLanded)
	assert.NotContains(t, types, event.TinyBlockLanded)
}

// Разобранный вручную случай: предыдущий блок 150..450, активный
// 100..400, пересечение 150..400, обрезок шириной 50 слева.
func TestLeftCutTrimsAndSpawnsDebris(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.stack[0] = Block{X: 150, Width: 300}

	e.state = StateDropping
	e.current = Block{X: 100, Width: 300, Y: e.stackTop(), Level: 1}
	e.resolveLanding()

	require.Len(t, e.Stack(), 2)
	landed := e.Stack()[1]
	assert.Equal(t, 150.0, landed.X)
	assert.Equal(t, 250.0, landed.Width)

	require.Len(t, e.Debris(), 1)
	scrap := e.Debris()[0]
	assert.Equal(t, 100.0, scrap.X)
	assert.Equal(t, 50.0, scrap.Width)
	assert.Equal(t, -e.Params().DebrisPopSpeed, scrap.SpeedY, "debris pops upward")
	assert.Equal(t, e.Params().DebrisSpinSpeed, math.Abs(scrap.RotationSpeed))
}

func TestRightCutDebrisStartsAtOverlapEdge(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.stack[0] = Block{X: 150, Width: 300}

	e.state = StateDropping
	e.current = Block{X: 200, Width: 300, Y: e.stackTop(), Level: 1}
	e.resolveLanding()

	landed := e.Stack()[1]
	assert.Equal(t, 200.0, landed.X)
	assert.Equal(t, 250.0, landed.Width)

	require.Len(t, e.Debris(), 1)
	assert.Equal(t, 450.0, e.Debris()[0].X, "right cut starts at the previous block's right edge")
}

func TestHalfOverlapEmitsTinyBlock(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.stack[0] = Block{X: 150, Width: 300}
	e.Drain()

	e.state = StateDropping
	e.current = Block{X: 300, Width: 300, Y: e.stackTop(), Level: 1}
	e.resolveLanding()

	require.Len(t, e.Stack(), 2)
	assert.Equal(t, 150.0, e.Stack()[1].Width)

	types := drainTypes(e)
	assert.Contains(t, types, event.BlockLanded)
	assert.Contains(t, types, event.TinyBlockLanded)
}

func TestMissEndsGame(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Drain()
	base := e.Stack()[0]

	e.state = StateDropping
	e.current = Block{X: base.Right() + 10, Width: base.Width, Y: e.stackTop(), Level: 1}
	e.resolveLanding()

	assert.Equal(t, StateGameOver, e.State())
	assert.Len(t, e.Stack(), 1)
	_, ok := e.CurrentBlock()
	assert.False(t, ok)
	require.Len(t, e.Debris(), 1, "the missed block falls away as debris")

	types := drainTypes(e)
	assert.Contains(t, types, event.GameOver)
	assert.Contains(t, types, event.StateChanged)
}

func TestTickAfterGameOverFreezesStack(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	base := e.Stack()[0]
	e.state = StateDropping
	e.current = Block{X: base.Right() + 10, Width: base.Width, Y: e.stackTop()}
	e.resolveLanding()

	stackBefore := append([]Block(nil), e.Stack()...)
	for i := 0; i < 300; i++ {
		e.Tick(0.05)
	}

	assert.Equal(t, stackBefore, e.Stack())
	assert.Equal(t, StateGameOver, e.State())
	assert.Empty(t, e.Debris(), "debris keeps decaying past game over and expires")
}

func TestTickWhileReadyIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	stackBefore := append([]Block(nil), e.Stack()...)
	e.Drain()

	e.Tick(0.05)
	e.Tick(-1)
	e.Tick(0)

	assert.Equal(t, stackBefore, e.Stack())
	assert.Equal(t, StateReady, e.State())
	assert.Empty(t, e.Drain())
}

func TestSwingSpeedRampsUpToCap(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	p := e.Params()

	prev := e.SwingSpeed()
	assert.Equal(t, p.SwingSpeedBase, prev)

	for i := 0; i < 40; i++ {
		e.state = StateDropping
		e.current.X = e.stack[len(e.stack)-1].X
		e.current.Width = e.stack[len(e.stack)-1].Width
		e.current.Y = e.stackTop()
		e.resolveLanding()

		assert.GreaterOrEqual(t, e.SwingSpeed(), prev, "swing speed never decreases")
		assert.LessOrEqual(t, e.SwingSpeed(), p.SwingSpeedMax)
		prev = e.SwingSpeed()
	}
	assert.Equal(t, p.SwingSpeedMax, e.SwingSpeed())

	e.Reset()
	assert.Equal(t, p.SwingSpeedBase, e.SwingSpeed())
}

func TestDropRotationDecaysAndSnaps(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Drop()
	e.current.Y = 10000 // далеко до посадки
	e.current.Rotation = 30

	e.Tick(0.016)
	assert.Less(t, e.current.Rotation, 30.0)
	assert.Greater(t, e.current.Rotation, 0.0)

	e.current.Rotation = 0.5
	e.Tick(0.016)
	assert.Zero(t, e.current.Rotation, "rotation snaps to zero below the threshold")
}

func TestDropAcceleratesDownward(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	e.Drop()
	e.current.Y = 10000

	y0 := e.current.Y
	e.Tick(0.016)
	y1 := e.current.Y
	e.Tick(0.016)
	y2 := e.current.Y

	assert.Less(t, y1, y0)
	assert.Less(t, y2-y1, y1-y0, "fall accelerates under gravity")
}

func TestDropLandsOnStackTopByTicking(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	// Ждём, пока маятник окажется почти над центром, и отпускаем.
	for i := 0; i < 10000; i++ {
		e.Tick(0.005)
		cur, _ := e.CurrentBlock()
		if math.Abs(cur.CenterX()-e.PivotX()) < 5 {
			break
		}
	}
	e.Drop()

	for i := 0; i < 10000 && e.State() == StateDropping; i++ {
		e.Tick(0.016)
	}

	assert.Equal(t, StateSwinging, e.State(), "near-centered drop lands and the next block spawns")
	assert.Equal(t, 2, len(e.Stack()))
	assert.Equal(t, e.stackTop()-e.Params().BlockHeight, e.Stack()[1].Y)
}

func TestPivotRisesWithStack(t *testing.T) {
	e := newTestEngine(t)
	e.Start()
	before := e.PivotY()

	e.state = StateDropping
	e.current.X = e.stack[0].X
	e.current.Y = e.stackTop()
	e.resolveLanding()

	assert.Equal(t, before+e.Params().BlockHeight, e.PivotY())
}

func TestDeterministicWithSameSeed(t *testing.T) {
	run := func() []Block {
		e := New(DefaultParams(), utils.NewPRNGService(42))
		e.Start()
		e.stack[0] = Block{X: 150, Width: 300}
		e.state = StateDropping
		e.current = Block{X: 100, Width: 300, Y: e.stackTop(), Level: 1}
		e.resolveLanding()
		return append([]Block(nil), e.Debris()...)
	}

	assert.Equal(t, run(), run())
}

func TestConfigurableConstants(t *testing.T) {
	p := DefaultParams()
	p.RopeLength = 100 // короче радиуса безопасности
	e := New(p, utils.NewPRNGService(1))

	assert.Equal(t, math.Asin(1.0), e.MaxSwingAngle(), "short rope clamps the amplitude ratio at 1")

	p.RopeLength = 500
	e = New(p, utils.NewPRNGService(1))
	assert.InDelta(t, math.Asin(0.5), e.MaxSwingAngle(), 1e-12)
}
