package block

import (
	"fmt"
	"sort"
	"strings"
)

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// All возвращает все зарегистрированные поведения, упорядоченные по ID
func All() []BlockBehavior {
	result := make([]BlockBehavior, 0, len(registry))
	for _, behavior := range registry {
		result = append(result, behavior)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID() < result[j].ID() })
	return result
}

// ParseBlockID ищет материал по имени без учёта регистра
func ParseBlockID(name string) (BlockID, error) {
	for id, behavior := range registry {
		if strings.EqualFold(behavior.Name(), name) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown block material %q", name)
}

// BlockID представляет идентификатор материала блока
type BlockID uint8

// Константы ID блоков
const (
	TileBlockID      BlockID = iota // 0 - плитка, нижние слои ландшафта
	TurfBlockID                     // 1 - дёрн, два верхних слоя
	CardboardBlockID                // 2 - картон, только для строительства
)

// String возвращает имя материала, если он зарегистрирован
func (id BlockID) String() string {
	if behavior, ok := Get(id); ok {
		return behavior.Name()
	}
	return fmt.Sprintf("BlockID(%d)", uint8(id))
}
