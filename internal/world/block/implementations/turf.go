package implementations

import "github.com/annel0/tinycraft/internal/world/block"

// TurfBehavior реализует материал дёрна (верхние слои ландшафта)
type TurfBehavior struct{}

func (b *TurfBehavior) ID() block.BlockID {
	return block.TurfBlockID
}

func (b *TurfBehavior) Name() string {
	return "Turf"
}

func (b *TurfBehavior) TextureSlot() int32 {
	return 1
}

func (b *TurfBehavior) TexturePath() string {
	return "assets/turf.png"
}
