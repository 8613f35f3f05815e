package world

import "github.com/annel0/tinycraft/internal/vec"

// Face определяет грань куба, в которую попал луч
type Face int8

// FaceNone - грань отсутствует (промах)
const FaceNone Face = -1

// Порядок граней совпадает с индексами, которые использует слой редактирования
const (
	FaceBottom Face = iota // 0: -Y
	FaceRight              // 1: +X
	FaceTop                // 2: +Y
	FaceLeft               // 3: -X
	FaceFront              // 4: +Z
	FaceBack               // 5: -Z
)

// AllFaces перечисляет все шесть граней в порядке индексов
var AllFaces = [...]Face{FaceBottom, FaceRight, FaceTop, FaceLeft, FaceFront, FaceBack}

var faceNormals = [...]vec.Vec3{
	FaceBottom: {Y: -1},
	FaceRight:  {X: 1},
	FaceTop:    {Y: 1},
	FaceLeft:   {X: -1},
	FaceFront:  {Z: 1},
	FaceBack:   {Z: -1},
}

var faceNames = [...]string{
	FaceBottom: "bottom",
	FaceRight:  "right",
	FaceTop:    "top",
	FaceLeft:   "left",
	FaceFront:  "front",
	FaceBack:   "back",
}

// Valid проверяет, что грань - одна из шести
func (f Face) Valid() bool {
	return f >= FaceBottom && f <= FaceBack
}

// Normal возвращает внешнюю нормаль грани. Для FaceNone - нулевой вектор.
func (f Face) Normal() vec.Vec3 {
	if !f.Valid() {
		return vec.Zero3
	}
	return faceNormals[f]
}

func (f Face) String() string {
	if !f.Valid() {
		return "none"
	}
	return faceNames[f]
}
