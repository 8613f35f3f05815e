package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ограничение тангажа, чтобы вектор взгляда не совпал с осью Y
const maxPitch = 89.0

// WorldUp - вертикаль мира
var WorldUp = mgl32.Vec3{0, 1, 0}

// Camera - камера от первого лица. Углы в градусах.
type Camera struct {
	Pos              mgl32.Vec3
	Yaw              float32
	Pitch            float32
	Fov              float32
	Near             float32
	Far              float32
	MouseSensitivity float32
	MoveSpeed        float32
}

// New создаёт камеру в (0, 0, 3), смотрящую вдоль -Z
func New() *Camera {
	return &Camera{
		Pos:              mgl32.Vec3{0, 0, 3},
		Yaw:              -90,
		Pitch:            0,
		Fov:              70,
		Near:             0.1,
		Far:              1000,
		MouseSensitivity: 0.1,
		MoveSpeed:        5,
	}
}

// Front возвращает единичный вектор взгляда
func (c *Camera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))

	f := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	return f.Normalize()
}

// Right возвращает единичный вектор вправо в горизонтальной плоскости
func (c *Camera) Right() mgl32.Vec3 {
	return c.Front().Cross(WorldUp).Normalize()
}

// Up возвращает единичный вектор "вверх" камеры
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Front()).Normalize()
}

// View возвращает матрицу вида
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Pos, c.Pos.Add(c.Front()), WorldUp)
}

// Proj возвращает матрицу перспективной проекции для соотношения сторон aspect
func (c *Camera) Proj(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Look поворачивает камеру на смещение мыши (dy > 0 - вверх)
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch = mgl32.Clamp(c.Pitch+dy*c.MouseSensitivity, -maxPitch, maxPitch)
}

// Turn поворачивает камеру на углы в градусах без учёта чувствительности
func (c *Camera) Turn(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = mgl32.Clamp(c.Pitch+dpitch, -maxPitch, maxPitch)
}

// Movement - набор нажатых клавиш движения за кадр
type Movement struct {
	Forward, Back, Left, Right, Up, Down bool
}

// Move смещает камеру: вперёд/назад вдоль взгляда, вбок по Right, вверх/вниз по вертикали мира
func (c *Camera) Move(m Movement, dt float32) {
	v := c.MoveSpeed * dt
	f, r := c.Front(), c.Right()

	if m.Forward {
		c.Pos = c.Pos.Add(f.Mul(v))
	}
	if m.Back {
		c.Pos = c.Pos.Sub(f.Mul(v))
	}
	if m.Right {
		c.Pos = c.Pos.Add(r.Mul(v))
	}
	if m.Left {
		c.Pos = c.Pos.Sub(r.Mul(v))
	}
	if m.Up {
		c.Pos = c.Pos.Add(WorldUp.Mul(v))
	}
	if m.Down {
		c.Pos = c.Pos.Sub(WorldUp.Mul(v))
	}
}
