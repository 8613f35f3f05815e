package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/tinycraft/internal/physics"
	"github.com/annel0/tinycraft/internal/vec"
)

// RayHit - результат трассировки луча. Не хранится между кадрами:
// Index действителен только до следующего изменения мира.
type RayHit struct {
	Index    int        // Индекс блока в Blocks(), -1 при промахе
	Pos      vec.Vec3   // Позиция блока
	Face     Face       // Грань входа луча
	Point    mgl32.Vec3 // Точка пересечения в мировых координатах
	Distance float32    // Расстояние вдоль луча; при промахе больше maxDistance
	found    bool
}

// Found сообщает, попал ли луч в блок
func (h RayHit) Found() bool {
	return h.found
}

// Adjacent возвращает позицию соседней с гранью попадания клетки - туда ставится новый блок
func (h RayHit) Adjacent() (vec.Vec3, bool) {
	if !h.found || !h.Face.Valid() {
		return vec.Vec3{}, false
	}
	return h.Pos.Add(h.Face.Normal()), true
}

// missHit возвращает результат "нет попадания". Distance всегда больше конечной maxDistance,
// в том числе когда прибавка 1 теряется в точности float32.
func missHit(maxDistance float32) RayHit {
	d := maxDistance + 1
	if d <= maxDistance {
		d = math.Nextafter32(maxDistance, float32(math.Inf(1)))
	}
	return RayHit{
		Index:    -1,
		Face:     FaceNone,
		Distance: d,
	}
}

// newHit собирает результат попадания по расстоянию входа tMin
func newHit(index int, pos vec.Vec3, origin, direction mgl32.Vec3, tMin float32) RayHit {
	point := origin.Add(direction.Mul(tMin))
	return RayHit{
		Index:    index,
		Pos:      pos,
		Face:     faceFromOffset(point.Sub(pos.Float())),
		Point:    point,
		Distance: tMin,
		found:    true,
	}
}

// faceFromOffset определяет грань по смещению точки от центра блока.
// Ось с наибольшим модулем выбирает пару граней, знак - сторону.
// При равенстве модулей приоритет X, затем Y, затем Z.
func faceFromOffset(offset mgl32.Vec3) Face {
	ax := mgl32.Abs(offset.X())
	ay := mgl32.Abs(offset.Y())
	az := mgl32.Abs(offset.Z())

	switch {
	case ax >= ay && ax >= az:
		if offset.X() > 0 {
			return FaceRight
		}
		return FaceLeft
	case ay >= az:
		if offset.Y() > 0 {
			return FaceTop
		}
		return FaceBottom
	default:
		if offset.Z() > 0 {
			return FaceFront
		}
		return FaceBack
	}
}

// entryDistance возвращает расстояние входа луча в блок pos, если вход лежит в [0, maxDistance]
func entryDistance(pos vec.Vec3, origin, direction mgl32.Vec3, maxDistance float32) (float32, bool) {
	tMin, ok := physics.BlockBounds(pos).EntryDistance(origin, direction)
	if !ok || tMin > maxDistance {
		return 0, false
	}
	return tMin, true
}

// Raycast находит ближайший блок, в который входит луч origin + t*direction, t in [0, maxDistance].
// Линейный обход всех блоков (slab-тест для каждого). При равных расстояниях побеждает
// блок с меньшим индексом. Мир не изменяется.
func (w *World) Raycast(origin, direction mgl32.Vec3, maxDistance float32) RayHit {
	best := missHit(maxDistance)

	for i, b := range w.blocks {
		tMin, ok := entryDistance(b.Pos, origin, direction, maxDistance)
		if !ok {
			continue
		}
		if !best.found || tMin < best.Distance {
			best = newHit(i, b.Pos, origin, direction, tMin)
		}
	}

	w.log.LogRaycast(best.found, best.Index, best.Face.String(), best.Distance)
	return best
}
