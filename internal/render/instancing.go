package render

import (
	"encoding/binary"
	"math"

	"github.com/annel0/tinycraft/internal/logging"
	"github.com/annel0/tinycraft/internal/world"
	"github.com/annel0/tinycraft/internal/world/block"
)

// InstanceSize - размер одной записи в байтах (vec3 + int, плотная упаковка)
const InstanceSize = 16

// BlockInstance - запись инстанс-буфера: смещение куба (location 1) и слот текстуры (location 3)
type BlockInstance struct {
	Pos      [3]float32
	TexIndex int32
}

// BlockSource - мир с точки зрения рендерера: снимок блоков и флаг устаревания
type BlockSource interface {
	Blocks() []world.Block
	Dirty() bool
	ClearDirty()
}

// InstanceBuffer хранит CPU-копию инстанс-буфера. Загрузка на GPU выполняется
// снаружи по данным из Bytes().
type InstanceBuffer struct {
	instances []BlockInstance
	packed    []byte
	rebuilds  int
	log       *logging.Logger
}

// NewInstanceBuffer создаёт пустой буфер
func NewInstanceBuffer() *InstanceBuffer {
	return &InstanceBuffer{
		log: logging.GetRenderLogger(),
	}
}

// Build пересобирает буфер из набора блоков без учёта флага
func (ib *InstanceBuffer) Build(blocks []world.Block) {
	ib.instances = ib.instances[:0]
	for _, b := range blocks {
		pos := b.Pos.Float()
		ib.instances = append(ib.instances, BlockInstance{
			Pos:      [3]float32{pos.X(), pos.Y(), pos.Z()},
			TexIndex: TextureSlot(b.ID),
		})
	}
	ib.packed = nil
	ib.rebuilds++
}

// Sync пересобирает буфер, только если мир помечен как изменённый, и сбрасывает флаг.
// Возвращает true, если буфер был пересобран и его нужно загрузить заново.
func (ib *InstanceBuffer) Sync(src BlockSource) bool {
	if !src.Dirty() {
		return false
	}

	ib.Build(src.Blocks())
	src.ClearDirty()

	ib.log.Debug("Instance buffer rebuilt: %d instances (%d bytes)", len(ib.instances), len(ib.instances)*InstanceSize)
	ib.log.Trace("Instance buffer head:\n%s", logging.HexDump(ib.Bytes()))
	return true
}

// Instances возвращает текущие записи
func (ib *InstanceBuffer) Instances() []BlockInstance {
	return ib.instances
}

// Len возвращает количество инстансов для вызова отрисовки
func (ib *InstanceBuffer) Len() int {
	return len(ib.instances)
}

// Rebuilds возвращает число пересборок с момента создания
func (ib *InstanceBuffer) Rebuilds() int {
	return ib.rebuilds
}

// Bytes возвращает буфер в little-endian (x, y, z float32, texIndex int32) для загрузки на GPU
func (ib *InstanceBuffer) Bytes() []byte {
	if ib.packed != nil {
		return ib.packed
	}

	buf := make([]byte, len(ib.instances)*InstanceSize)
	for i, inst := range ib.instances {
		off := i * InstanceSize
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(inst.Pos[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(inst.Pos[1]))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(inst.Pos[2]))
		binary.LittleEndian.PutUint32(buf[off+12:], uint32(inst.TexIndex))
	}
	ib.packed = buf
	return buf
}

// TextureSlot переводит материал в слот текстуры. Незарегистрированный материал
// получает слот, равный его ID.
func TextureSlot(id block.BlockID) int32 {
	if behavior, ok := block.Get(id); ok {
		return behavior.TextureSlot()
	}
	return int32(id)
}

// TexturePaths возвращает пути текстур по слотам для загрузчика текстур
func TexturePaths() map[int32]string {
	paths := make(map[int32]string)
	for _, behavior := range block.All() {
		paths[behavior.TextureSlot()] = behavior.TexturePath()
	}
	return paths
}
