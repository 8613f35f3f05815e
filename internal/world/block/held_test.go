package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeldItemZeroValueIsEmpty(t *testing.T) {
	var h HeldItem
	assert.True(t, h.IsEmpty())

	_, ok := h.Get()
	assert.False(t, ok)
	assert.Equal(t, "empty", h.String())
}

func TestHeldItemHolding(t *testing.T) {
	h := Holding(CardboardBlockID)
	assert.False(t, h.IsEmpty())

	id, ok := h.Get()
	assert.True(t, ok)
	assert.Equal(t, CardboardBlockID, id)
}

func TestHotbarSlot(t *testing.T) {
	tests := []struct {
		slot  int
		want  BlockID
		empty bool
	}{
		{slot: 0, empty: true},
		{slot: 1, want: TileBlockID},
		{slot: 2, want: TurfBlockID},
		{slot: 3, want: CardboardBlockID},
		{slot: 9, empty: true},
		{slot: -1, empty: true},
	}

	for _, tt := range tests {
		h := HotbarSlot(tt.slot)
		if tt.empty {
			assert.True(t, h.IsEmpty(), "слот %d должен давать пустую руку", tt.slot)
			continue
		}
		id, ok := h.Get()
		assert.True(t, ok, "слот %d", tt.slot)
		assert.Equal(t, tt.want, id, "слот %d", tt.slot)
	}
}

func TestUnregisteredBlockIDString(t *testing.T) {
	assert.Equal(t, "BlockID(200)", BlockID(200).String())
}
