package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/tinycraft/internal/vec"
)

// HalfExtent - половина ребра единичного блока
const HalfExtent float32 = 0.5

// AABB представляет выровненный по осям параллелепипед
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BlockBounds возвращает границы единичного куба с центром в целочисленной позиции
func BlockBounds(pos vec.Vec3) AABB {
	center := pos.Float()
	half := mgl32.Vec3{HalfExtent, HalfExtent, HalfExtent}
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// IntersectRay выполняет slab-тест луча origin + t*direction против параллелепипеда.
// Возвращает интервал [tMin, tMax] пересечения прямой с телом. ok == false, если
// луч параллелен одной из пар плоскостей и проходит вне неё, либо интервал пуст.
// Отрицательный tMin означает, что начало луча внутри тела или тело позади.
func (a AABB) IntersectRay(origin, direction mgl32.Vec3) (tMin, tMax float32, ok bool) {
	tMin = float32(math.Inf(-1))
	tMax = float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		lo, hi := a.Min[axis], a.Max[axis]
		if direction[axis] != 0 {
			t1 := (lo - origin[axis]) / direction[axis]
			t2 := (hi - origin[axis]) / direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tMin {
				tMin = t1
			}
			if t2 < tMax {
				tMax = t2
			}
		} else if origin[axis] < lo || origin[axis] > hi {
			// Луч параллелен слою и лежит вне его
			return 0, 0, false
		}
	}

	if tMax < tMin {
		return tMin, tMax, false
	}
	return tMin, tMax, true
}

// EntryDistance возвращает расстояние входа луча в тело. Попадание засчитывается,
// только если вход лежит впереди начала луча (tMin >= 0).
func (a AABB) EntryDistance(origin, direction mgl32.Vec3) (float32, bool) {
	tMin, _, ok := a.IntersectRay(origin, direction)
	if !ok || tMin < 0 {
		return 0, false
	}
	return tMin, true
}
