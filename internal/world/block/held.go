package block

// HeldItem - предмет в руке игрока: либо конкретный материал, либо пустая рука.
// Нулевое значение означает пустую руку.
type HeldItem struct {
	id  BlockID
	set bool
}

// Holding возвращает руку с указанным материалом
func Holding(id BlockID) HeldItem {
	return HeldItem{id: id, set: true}
}

// EmptyHand возвращает пустую руку
func EmptyHand() HeldItem {
	return HeldItem{}
}

// Get возвращает материал и признак его наличия
func (h HeldItem) Get() (BlockID, bool) {
	return h.id, h.set
}

// IsEmpty проверяет, пуста ли рука
func (h HeldItem) IsEmpty() bool {
	return !h.set
}

func (h HeldItem) String() string {
	if !h.set {
		return "empty"
	}
	return h.id.String()
}

// HotbarSlot отображает номер клавиши в предмет: 1 - плитка, 2 - дёрн, 3 - картон,
// 0 и всё остальное - пустая рука
func HotbarSlot(n int) HeldItem {
	switch n {
	case 1:
		return Holding(TileBlockID)
	case 2:
		return Holding(TurfBlockID)
	case 3:
		return Holding(CardboardBlockID)
	default:
		return EmptyHand()
	}
}
