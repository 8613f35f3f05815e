package vec

// Vec2 представляет 2D координаты (колонка X, Z на карте высот)
type Vec2 struct {
	X, Y int
}

// ToVec3 поднимает колонку на высоту y
func (v Vec2) ToVec3(y int) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Y}
}
