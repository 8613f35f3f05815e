package implementations

import "github.com/annel0/tinycraft/internal/world/block"

// TileBehavior реализует материал плитки
type TileBehavior struct{}

// ID возвращает идентификатор блока
func (b *TileBehavior) ID() block.BlockID {
	return block.TileBlockID
}

// Name возвращает имя блока
func (b *TileBehavior) Name() string {
	return "Tile"
}

// TextureSlot возвращает слот текстуры
func (b *TileBehavior) TextureSlot() int32 {
	return 0
}

// TexturePath возвращает путь к текстуре
func (b *TileBehavior) TexturePath() string {
	return "assets/tile.png"
}
