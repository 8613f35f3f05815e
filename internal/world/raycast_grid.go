package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/tinycraft/internal/vec"
)

// RaycastGrid даёт тот же результат, что и Raycast, но обходит только клетки сетки
// вдоль луча (Amanatides-Woo) и проверяет их по индексу позиций. Стоимость зависит
// от maxDistance, а не от числа блоков. Для лучей, проходящих точно через рёбра
// и углы клеток, выбор среди равноудалённых блоков может отличаться от Raycast.
func (w *World) RaycastGrid(origin, direction mgl32.Vec3, maxDistance float32) RayHit {
	if direction == (mgl32.Vec3{}) || maxDistance < 0 {
		return missHit(maxDistance)
	}
	if math.IsInf(float64(maxDistance), 0) || math.IsNaN(float64(maxDistance)) {
		// Без конечной дальности обход сетки не ограничен
		return w.Raycast(origin, direction, maxDistance)
	}
	if onParallelBoundary(origin, direction) {
		// Луч скользит по общей грани двух колонн клеток; обход видит только одну из них
		return w.Raycast(origin, direction, maxDistance)
	}

	// Блоки центрированы в целых точках, клетка - это round(origin)
	cell := vec.Vec3{
		X: int(math.Floor(float64(origin.X()) + 0.5)),
		Y: int(math.Floor(float64(origin.Y()) + 0.5)),
		Z: int(math.Floor(float64(origin.Z()) + 0.5)),
	}

	var (
		step   [3]int
		tMax   [3]float32
		tDelta [3]float32
	)
	inf := float32(math.Inf(1))
	for axis := 0; axis < 3; axis++ {
		d := direction[axis]
		c := float32(cell.Axis(axis))
		switch {
		case d > 0:
			step[axis] = 1
			tMax[axis] = (c + 0.5 - origin[axis]) / d
			tDelta[axis] = 1 / d
		case d < 0:
			step[axis] = -1
			tMax[axis] = (c - 0.5 - origin[axis]) / d
			tDelta[axis] = -1 / d
		default:
			tMax[axis] = inf
			tDelta[axis] = inf
		}
	}

	var t float32
	for t <= maxDistance {
		if i, ok := w.index[cell]; ok {
			if tMin, hit := entryDistance(cell, origin, direction, maxDistance); hit {
				result := newHit(i, cell, origin, direction, tMin)
				w.log.LogRaycast(true, result.Index, result.Face.String(), result.Distance)
				return result
			}
		}

		axis := 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		t = tMax[axis]
		cell = cell.WithAxis(axis, cell.Axis(axis)+step[axis])
		tMax[axis] += tDelta[axis]
	}

	w.log.LogRaycast(false, -1, FaceNone.String(), maxDistance+1)
	return missHit(maxDistance)
}

// onParallelBoundary сообщает, что по оси с нулевой компонентой направления
// начало луча лежит ровно на границе клеток (полуцелая координата)
func onParallelBoundary(origin, direction mgl32.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if direction[axis] != 0 {
			continue
		}
		shifted := float64(origin[axis]) + 0.5
		if shifted == math.Floor(shifted) {
			return true
		}
	}
	return false
}
