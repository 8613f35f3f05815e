package implementations

import "github.com/annel0/tinycraft/internal/world/block"

// Регистрируем все материалы при импорте пакета
func init() {
	block.Register(block.TileBlockID, &TileBehavior{})
	block.Register(block.TurfBlockID, &TurfBehavior{})
	block.Register(block.CardboardBlockID, &CardboardBehavior{})
}
