package world

import (
	"errors"
	"fmt"

	"github.com/annel0/tinycraft/internal/logging"
	"github.com/annel0/tinycraft/internal/vec"
)

// ErrPositionOccupied возвращается при попытке поставить блок в занятую позицию
var ErrPositionOccupied = errors.New("position already occupied")

// World - единственный владелец набора блоков. Все чтения и изменения проходят через него.
//
// Мир однопоточный: методы вызываются из цикла кадра и не защищены мьютексом.
// Любое структурное изменение выставляет флаг dirty; рендерер пересобирает
// снимок и сбрасывает флаг через ClearDirty.
type World struct {
	blocks []Block          // Плоский массив для рендера и линейного обхода
	index  map[vec.Vec3]int // Позиция -> индекс в blocks
	dirty  bool             // Снимок для рендера устарел
	log    *logging.Logger
}

// NewWorld создаёт мир из последовательности блоков генератора.
// Позиции должны быть уникальны, иначе возвращается ошибка ErrPositionOccupied.
func NewWorld(blocks []Block) (*World, error) {
	w := &World{
		blocks: make([]Block, 0, len(blocks)),
		index:  make(map[vec.Vec3]int, len(blocks)),
		dirty:  true, // первый кадр всегда загружает буфер
		log:    logging.GetWorldLogger(),
	}

	for _, b := range blocks {
		if _, exists := w.index[b.Pos]; exists {
			return nil, fmt.Errorf("duplicate block at %v: %w", b.Pos, ErrPositionOccupied)
		}
		w.index[b.Pos] = len(w.blocks)
		w.blocks = append(w.blocks, b)
	}

	w.log.Debug("World created with %d blocks", len(w.blocks))
	return w, nil
}

// Blocks возвращает текущий набор блоков. Срез принадлежит миру: его нельзя
// изменять и нельзя хранить после следующего Add/Remove.
func (w *World) Blocks() []Block {
	return w.blocks
}

// Snapshot возвращает копию текущего набора блоков
func (w *World) Snapshot() []Block {
	out := make([]Block, len(w.blocks))
	copy(out, w.blocks)
	return out
}

// Len возвращает количество блоков
func (w *World) Len() int {
	return len(w.blocks)
}

// Has проверяет, занята ли позиция
func (w *World) Has(pos vec.Vec3) bool {
	_, ok := w.index[pos]
	return ok
}

// At возвращает блок в позиции pos
func (w *World) At(pos vec.Vec3) (Block, bool) {
	i, ok := w.index[pos]
	if !ok {
		return Block{}, false
	}
	return w.blocks[i], true
}

// Add добавляет блок. Если позиция занята, мир не меняется и возвращается ErrPositionOccupied.
func (w *World) Add(b Block) error {
	if _, exists := w.index[b.Pos]; exists {
		return fmt.Errorf("add block at %v: %w", b.Pos, ErrPositionOccupied)
	}

	w.index[b.Pos] = len(w.blocks)
	w.blocks = append(w.blocks, b)
	w.dirty = true
	return nil
}

// Remove удаляет блок в позиции pos. Отсутствие блока не ошибка: возвращается false.
// Последний блок переносится на место удалённого, поэтому индексы прежних
// результатов Raycast после удаления недействительны.
func (w *World) Remove(pos vec.Vec3) bool {
	i, ok := w.index[pos]
	if !ok {
		return false
	}

	last := len(w.blocks) - 1
	if i != last {
		w.blocks[i] = w.blocks[last]
		w.index[w.blocks[i].Pos] = i
	}
	w.blocks = w.blocks[:last]
	delete(w.index, pos)
	w.dirty = true
	return true
}

// Dirty сообщает, что набор блоков изменился с момента последнего ClearDirty
func (w *World) Dirty() bool {
	return w.dirty
}

// ClearDirty вызывается рендерером после пересборки снимка
func (w *World) ClearDirty() {
	w.dirty = false
}
