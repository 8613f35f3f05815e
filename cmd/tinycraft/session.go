package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/tinycraft/internal/camera"
	"github.com/annel0/tinycraft/internal/editor"
	"github.com/annel0/tinycraft/internal/render"
	"github.com/annel0/tinycraft/internal/world"
)

// session - один кадр на команду: ввод применяется к камере и редактору,
// затем мир синхронизируется с инстанс-буфером
type session struct {
	world  *world.World
	editor *editor.Editor
	camera *camera.Camera
	buffer *render.InstanceBuffer
	out    io.Writer
	now    func() time.Time
}

func newSession(w *world.World, ed *editor.Editor, cam *camera.Camera, out io.Writer) *session {
	s := &session{
		world:  w,
		editor: ed,
		camera: cam,
		buffer: render.NewInstanceBuffer(),
		out:    out,
		now:    time.Now,
	}
	s.buffer.Sync(w)
	return s
}

// run читает команды построчно до quit или конца ввода
func (s *session) run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		quit, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// exec выполняет одну команду. Пустые строки и комментарии (#) игнорируются.
func (s *session) exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "quit", "exit":
		return true, nil

	case "look":
		v, err := parseFloats(args, 2)
		if err != nil {
			return false, fmt.Errorf("look: %w", err)
		}
		s.camera.Turn(v[0], v[1])
		fmt.Fprintf(s.out, "yaw=%.1f pitch=%.1f\n", s.camera.Yaw, s.camera.Pitch)

	case "goto":
		v, err := parseFloats(args, 3)
		if err != nil {
			return false, fmt.Errorf("goto: %w", err)
		}
		s.camera.Pos = mgl32.Vec3{v[0], v[1], v[2]}
		fmt.Fprintf(s.out, "pos=(%.2f, %.2f, %.2f)\n", v[0], v[1], v[2])

	case "move":
		if len(args) != 2 {
			return false, fmt.Errorf("move: expected direction and seconds")
		}
		m, err := parseMovement(args[0])
		if err != nil {
			return false, err
		}
		dt, err := parseFloats(args[1:], 1)
		if err != nil {
			return false, fmt.Errorf("move: %w", err)
		}
		s.camera.Move(m, dt[0])
		p := s.camera.Pos
		fmt.Fprintf(s.out, "pos=(%.2f, %.2f, %.2f)\n", p.X(), p.Y(), p.Z())

	case "target":
		s.printHit(s.editor.Target(s.camera.Pos, s.camera.Front()))

	case "break":
		s.report(s.editor.Break(s.now(), s.camera.Pos, s.camera.Front()))

	case "place":
		s.report(s.editor.Place(s.now(), s.camera.Pos, s.camera.Front()))

	case "select":
		if len(args) != 1 {
			return false, fmt.Errorf("select: expected slot number")
		}
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("select: %w", err)
		}
		fmt.Fprintf(s.out, "held=%s\n", s.editor.Select(slot))

	case "stats":
		fmt.Fprintf(s.out, "blocks=%d instances=%d rebuilds=%d held=%s\n",
			s.world.Len(), s.buffer.Len(), s.buffer.Rebuilds(), s.editor.Held())

	default:
		return false, fmt.Errorf("unknown command %q", cmd)
	}

	if s.buffer.Sync(s.world) {
		fmt.Fprintf(s.out, "instances=%d\n", s.buffer.Len())
	}
	return false, nil
}

func (s *session) printHit(hit world.RayHit) {
	if !hit.Found() {
		fmt.Fprintln(s.out, "miss")
		return
	}
	fmt.Fprintf(s.out, "hit #%d (%d, %d, %d) face=%s distance=%.2f\n",
		hit.Index, hit.Pos.X, hit.Pos.Y, hit.Pos.Z, hit.Face, hit.Distance)
}

func (s *session) report(a editor.Action) {
	if !a.Applied() {
		fmt.Fprintf(s.out, "%s: %s\n", a.Kind, a.Outcome)
		return
	}
	fmt.Fprintf(s.out, "%s (%d, %d, %d)\n", a.Kind, a.Pos.X, a.Pos.Y, a.Pos.Z)
}

func parseMovement(dir string) (camera.Movement, error) {
	var m camera.Movement
	switch strings.ToLower(dir) {
	case "forward", "w":
		m.Forward = true
	case "back", "s":
		m.Back = true
	case "left", "a":
		m.Left = true
	case "right", "d":
		m.Right = true
	case "up":
		m.Up = true
	case "down":
		m.Down = true
	default:
		return m, fmt.Errorf("move: unknown direction %q", dir)
	}
	return m, nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
