package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/tinycraft/internal/camera"
	"github.com/annel0/tinycraft/internal/editor"
	"github.com/annel0/tinycraft/internal/vec"
	"github.com/annel0/tinycraft/internal/world"
	"github.com/annel0/tinycraft/internal/world/block"
	_ "github.com/annel0/tinycraft/internal/world/block/implementations"
)

func newTestSession(t *testing.T) (*session, *world.World, *bytes.Buffer) {
	t.Helper()
	w, err := world.NewWorld([]world.Block{world.NewBlock(vec.Vec3{}, block.TileBlockID)})
	require.NoError(t, err)

	ed := editor.New(w, editor.Options{
		Reach:         10,
		BreakCooldown: 100 * time.Millisecond,
		PlaceCooldown: 100 * time.Millisecond,
	})

	var out bytes.Buffer
	s := newSession(w, ed, camera.New(), &out)

	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s, w, &out
}

func TestSessionScript(t *testing.T) {
	s, w, out := newTestSession(t)
	assert.False(t, w.Dirty(), "initial sync clears the flag")

	script := strings.Join([]string{
		"# comment",
		"target",
		"place",
		"select 3",
		"place",
		"break",
		"stats",
		"bogus",
		"quit",
		"break",
	}, "\n")
	require.NoError(t, s.run(strings.NewReader(script)))

	got := out.String()
	assert.Contains(t, got, "hit #0 (0, 0, 0) face=front distance=2.50")
	assert.Contains(t, got, "place: empty_hand")
	assert.Contains(t, got, "held=Cardboard")
	assert.Contains(t, got, "place (0, 0, 1)\ninstances=2\n")
	assert.Contains(t, got, "break (0, 0, 1)\ninstances=1\n")
	assert.Contains(t, got, "blocks=1 instances=1 rebuilds=3 held=Cardboard")
	assert.Contains(t, got, `error: unknown command "bogus"`)

	// Команды после quit не выполняются
	assert.Equal(t, 1, w.Len())
	assert.True(t, w.Has(vec.Vec3{}))
}

func TestSessionCameraCommands(t *testing.T) {
	s, _, out := newTestSession(t)

	quit, err := s.exec("goto 0 5 0")
	require.NoError(t, err)
	assert.False(t, quit)

	_, err = s.exec("look 0 -90")
	require.NoError(t, err)
	assert.Equal(t, float32(-89), s.camera.Pitch)

	_, err = s.exec("target")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "face=top")

	_, err = s.exec("move up 0.2")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "pos=(0.00, 6.00, 0.00)")
}

func TestSessionArgumentErrors(t *testing.T) {
	s, _, _ := newTestSession(t)

	for _, line := range []string{"look 1", "goto a b c", "select", "select x", "move sideways 1", "move up"} {
		_, err := s.exec(line)
		assert.Error(t, err, line)
	}

	quit, err := s.exec("   ")
	assert.NoError(t, err)
	assert.False(t, quit)

	quit, err = s.exec("EXIT")
	assert.NoError(t, err)
	assert.True(t, quit)
}
