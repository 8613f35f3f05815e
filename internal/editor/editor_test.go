package editor

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tinycraft/internal/vec"
	"github.com/annel0/tinycraft/internal/world"
	"github.com/annel0/tinycraft/internal/world/block"
	_ "github.com/annel0/tinycraft/internal/world/block/implementations"
)

var (
	eye     = mgl32.Vec3{0, 0, 5}
	forward = mgl32.Vec3{0, 0, -1}
	t0      = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

func newTestEditor(t *testing.T, held block.HeldItem, positions ...vec.Vec3) (*Editor, *world.World, *Metrics) {
	t.Helper()
	blocks := make([]world.Block, 0, len(positions))
	for _, p := range positions {
		blocks = append(blocks, world.NewBlock(p, block.TileBlockID))
	}
	w, err := world.NewWorld(blocks)
	require.NoError(t, err)

	m := NewMetrics(prometheus.NewRegistry())
	e := New(w, Options{
		Reach:         10,
		BreakCooldown: 100 * time.Millisecond,
		PlaceCooldown: 100 * time.Millisecond,
		Held:          held,
		Metrics:       m,
	})
	return e, w, m
}

func TestButtonsReportPressEdgesOnly(t *testing.T) {
	var b Buttons

	assert.Equal(t, Edges{Break: true}, b.Update(true, false))
	assert.Equal(t, Edges{}, b.Update(true, false), "holding must not repeat")
	assert.Equal(t, Edges{Place: true}, b.Update(false, true))
	assert.Equal(t, Edges{}, b.Update(false, false))
	assert.Equal(t, Edges{Break: true, Place: true}, b.Update(true, true))
}

func TestBreakRemovesTargetedBlock(t *testing.T) {
	e, w, m := newTestEditor(t, block.EmptyHand(), vec.Vec3{})

	a := e.Break(t0, eye, forward)
	require.True(t, a.Applied())
	assert.Equal(t, vec.Vec3{}, a.Pos)
	assert.Equal(t, world.FaceFront, a.Hit.Face)
	assert.Equal(t, 0, w.Len())
	assert.False(t, w.Has(vec.Vec3{}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("break", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.raycasts))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.hits))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.blocks))
}

func TestBreakMissLeavesWorldUnchanged(t *testing.T) {
	e, w, m := newTestEditor(t, block.EmptyHand(), vec.Vec3{})

	a := e.Break(t0, eye, mgl32.Vec3{0, 0, 1})
	assert.Equal(t, OutcomeMissed, a.Outcome)
	assert.False(t, a.Hit.Found())
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.hits))
}

func TestBreakCooldown(t *testing.T) {
	e, w, _ := newTestEditor(t, block.EmptyHand(),
		vec.Vec3{X: 0, Y: 0, Z: 0},
		vec.Vec3{X: 0, Y: 0, Z: -1},
	)

	require.True(t, e.Break(t0, eye, forward).Applied())

	a := e.Break(t0.Add(50*time.Millisecond), eye, forward)
	assert.Equal(t, OutcomeCooldown, a.Outcome)
	assert.True(t, a.Hit.Found())
	assert.Equal(t, 1, w.Len())

	// Интервал строгий: ровно 100 мс ещё мало
	a = e.Break(t0.Add(100*time.Millisecond), eye, forward)
	assert.Equal(t, OutcomeCooldown, a.Outcome)

	a = e.Break(t0.Add(101*time.Millisecond), eye, forward)
	require.True(t, a.Applied())
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: -1}, a.Pos)
	assert.Equal(t, 0, w.Len())
}

func TestPlaceOnHitFace(t *testing.T) {
	e, w, m := newTestEditor(t, block.Holding(block.CardboardBlockID), vec.Vec3{})

	a := e.Place(t0, eye, forward)
	require.True(t, a.Applied())
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 1}, a.Pos)
	assert.Equal(t, 2, w.Len())

	b, ok := w.At(vec.Vec3{X: 0, Y: 0, Z: 1})
	require.True(t, ok)
	assert.Equal(t, block.CardboardBlockID, b.ID)
	assert.True(t, w.Dirty())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("place", "applied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.blocks))
}

func TestPlaceFromTopFace(t *testing.T) {
	e, w, _ := newTestEditor(t, block.Holding(block.TurfBlockID), vec.Vec3{})

	a := e.Place(t0, mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, -1, 0})
	require.True(t, a.Applied())
	assert.Equal(t, world.FaceTop, a.Hit.Face)
	assert.Equal(t, vec.Vec3{X: 0, Y: 1, Z: 0}, a.Pos)
	assert.True(t, w.Has(a.Pos))
}

func TestPlaceCooldown(t *testing.T) {
	e, w, _ := newTestEditor(t, block.Holding(block.TileBlockID), vec.Vec3{})

	require.True(t, e.Place(t0, eye, forward).Applied())

	a := e.Place(t0.Add(50*time.Millisecond), eye, forward)
	assert.Equal(t, OutcomeCooldown, a.Outcome)
	assert.Equal(t, 2, w.Len())

	a = e.Place(t0.Add(150*time.Millisecond), eye, forward)
	require.True(t, a.Applied())
	assert.Equal(t, vec.Vec3{X: 0, Y: 0, Z: 2}, a.Pos)
	assert.Equal(t, 3, w.Len())
}

func TestPlaceWithEmptyHand(t *testing.T) {
	e, w, m := newTestEditor(t, block.EmptyHand(), vec.Vec3{})

	a := e.Place(t0, eye, forward)
	assert.Equal(t, OutcomeEmptyHand, a.Outcome)
	assert.True(t, a.Hit.Found())
	assert.Equal(t, 1, w.Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.actions.WithLabelValues("place", "empty_hand")))
}

func TestPlaceRefusesOccupiedCell(t *testing.T) {
	// Камера внутри блока (0,0,1): он не считается целью, луч попадает в (0,0,0),
	// а клетка над его передней гранью уже занята.
	e, w, _ := newTestEditor(t, block.Holding(block.TileBlockID),
		vec.Vec3{X: 0, Y: 0, Z: 0},
		vec.Vec3{X: 0, Y: 0, Z: 1},
	)

	a := e.Place(t0, mgl32.Vec3{0, 0, 1.2}, forward)
	require.True(t, a.Hit.Found())
	assert.Equal(t, vec.Vec3{}, a.Hit.Pos)
	assert.Equal(t, OutcomeOccupied, a.Outcome)
	assert.Equal(t, 2, w.Len())
}

func TestPlaceMiss(t *testing.T) {
	e, w, _ := newTestEditor(t, block.Holding(block.TileBlockID))

	a := e.Place(t0, eye, forward)
	assert.Equal(t, OutcomeMissed, a.Outcome)
	assert.Equal(t, 0, w.Len())
}

func TestSelectHotbar(t *testing.T) {
	e, _, _ := newTestEditor(t, block.EmptyHand())

	tests := []struct {
		slot int
		want block.HeldItem
	}{
		{1, block.Holding(block.TileBlockID)},
		{2, block.Holding(block.TurfBlockID)},
		{3, block.Holding(block.CardboardBlockID)},
		{0, block.EmptyHand()},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, e.Select(tt.slot), "slot %d", tt.slot)
		assert.Equal(t, tt.want, e.Held())
	}
}

func TestApplyBreaksBeforePlacing(t *testing.T) {
	e, w, _ := newTestEditor(t, block.Holding(block.TurfBlockID),
		vec.Vec3{X: 0, Y: 0, Z: 0},
		vec.Vec3{X: 0, Y: 0, Z: -1},
	)

	actions := e.Apply(t0, Edges{Break: true, Place: true}, eye, forward)
	require.Len(t, actions, 2)
	assert.Equal(t, ActionBreak, actions[0].Kind)
	assert.True(t, actions[0].Applied())
	assert.Equal(t, ActionPlace, actions[1].Kind)
	assert.True(t, actions[1].Applied())
	// Разрушен (0,0,0), новый блок встал перед (0,0,-1) на то же место
	assert.Equal(t, vec.Vec3{}, actions[1].Pos)
	b, ok := w.At(vec.Vec3{})
	require.True(t, ok)
	assert.Equal(t, block.TurfBlockID, b.ID)

	assert.Empty(t, e.Apply(t0, Edges{}, eye, forward))
}

func TestNewAppliesDefaults(t *testing.T) {
	w, err := world.NewWorld(nil)
	require.NoError(t, err)

	e := New(w, Options{BreakCooldown: -1, PlaceCooldown: -1})
	assert.Equal(t, DefaultReach, e.reach)
	assert.Equal(t, DefaultBreakCooldown, e.breakCooldown)
	assert.Equal(t, DefaultPlaceCooldown, e.placeCooldown)
	assert.Equal(t, RaycastScan, e.raycast)
	assert.True(t, e.Held().IsEmpty())
	assert.NotEqual(t, e.SessionID(), New(w, Options{}).SessionID())

	// Без метрик редактор работает так же
	assert.Equal(t, OutcomeMissed, e.Break(t0, eye, forward).Outcome)
}

func TestParseRaycastMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RaycastMode
		wantErr bool
	}{
		{"", RaycastScan, false},
		{"scan", RaycastScan, false},
		{" Grid ", RaycastGrid, false},
		{"octree", RaycastScan, true},
	}
	for _, tt := range tests {
		got, err := ParseRaycastMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestGridRaycastEditsLikeScan(t *testing.T) {
	for _, mode := range []RaycastMode{RaycastScan, RaycastGrid} {
		t.Run(string(mode), func(t *testing.T) {
			w, err := world.NewWorld([]world.Block{
				world.NewBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, block.TileBlockID),
				world.NewBlock(vec.Vec3{X: 0, Y: 0, Z: -1}, block.TileBlockID),
			})
			require.NoError(t, err)

			e := New(w, Options{Raycast: mode, Held: block.Holding(block.TurfBlockID)})
			assert.Equal(t, mode, e.raycast)

			// Луч вдоль границы клеток x = 0.5
			hit := e.Target(mgl32.Vec3{0.5, 0, 5}, forward)
			require.True(t, hit.Found())
			assert.Equal(t, vec.Vec3{}, hit.Pos)

			a := e.Break(t0, eye, forward)
			require.True(t, a.Applied())
			assert.Equal(t, vec.Vec3{}, a.Pos)

			a = e.Place(t0, eye, forward)
			require.True(t, a.Applied())
			assert.Equal(t, vec.Vec3{}, a.Pos)
			assert.Equal(t, 2, w.Len())
		})
	}
}
