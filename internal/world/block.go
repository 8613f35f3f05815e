package world

import (
	"github.com/annel0/tinycraft/internal/physics"
	"github.com/annel0/tinycraft/internal/vec"
	"github.com/annel0/tinycraft/internal/world/block"
)

// Block представляет собой единичный куб в сетке мира
type Block struct {
	Pos vec.Vec3      // Позиция центра блока
	ID  block.BlockID // Материал блока
}

// NewBlock создаёт блок указанного материала в позиции pos
func NewBlock(pos vec.Vec3, id block.BlockID) Block {
	return Block{Pos: pos, ID: id}
}

// GetBehavior возвращает описание материала блока
func (b Block) GetBehavior() (block.BlockBehavior, bool) {
	return block.Get(b.ID)
}

// Bounds возвращает границы блока [pos-0.5, pos+0.5]
func (b Block) Bounds() physics.AABB {
	return physics.BlockBounds(b.Pos)
}
