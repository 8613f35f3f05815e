package editor

// Buttons отслеживает фронты кнопок мыши между кадрами.
// Действие срабатывает один раз на нажатие, удержание не повторяет его.
type Buttons struct {
	prevBreak bool
	prevPlace bool
}

// Edges - кнопки, нажатые именно в этом кадре
type Edges struct {
	Break bool
	Place bool
}

// Update принимает текущее состояние кнопок и возвращает фронты нажатия
func (b *Buttons) Update(breakDown, placeDown bool) Edges {
	e := Edges{
		Break: breakDown && !b.prevBreak,
		Place: placeDown && !b.prevPlace,
	}
	b.prevBreak = breakDown
	b.prevPlace = placeDown
	return e
}
