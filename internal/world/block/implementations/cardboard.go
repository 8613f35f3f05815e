package implementations

import "github.com/annel0/tinycraft/internal/world/block"

// CardboardBehavior реализует строительный материал картона.
// Генератор ландшафта его не использует, блоки ставит только игрок.
type CardboardBehavior struct{}

func (b *CardboardBehavior) ID() block.BlockID {
	return block.CardboardBlockID
}

func (b *CardboardBehavior) Name() string {
	return "Cardboard"
}

func (b *CardboardBehavior) TextureSlot() int32 {
	return 2
}

func (b *CardboardBehavior) TexturePath() string {
	return "assets/cardboard.png"
}
