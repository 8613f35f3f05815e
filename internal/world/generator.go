package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/annel0/tinycraft/internal/util"
	"github.com/annel0/tinycraft/internal/vec"
	"github.com/annel0/tinycraft/internal/world/block"
)

// TerrainMode выбирает алгоритм генерации ландшафта
type TerrainMode string

const (
	TerrainFlat   TerrainMode = "flat"   // Ровное поле колонн с дырами в верхнем слое
	TerrainPerlin TerrainMode = "perlin" // Карта высот по шуму Перлина
)

// Параметры генерации по умолчанию
const (
	DefaultTopLayerChance = 0.4  // Вероятность появления блока в самом верхнем слое
	DefaultNoiseScale     = 0.08 // Масштаб координат для шума
	turfLayers            = 2    // Сколько верхних слоёв покрыто дёрном
)

// ErrInvalidTerrain возвращается при некорректных параметрах генератора
var ErrInvalidTerrain = errors.New("invalid terrain parameters")

// TerrainGenerator генерирует начальный набор блоков мира
type TerrainGenerator struct {
	Width          int         // Ширина поля в колоннах (чётная)
	Height         int         // Количество слоёв по Y
	Seed           int64       // Сид генерации
	Mode           TerrainMode // Алгоритм
	TopLayerChance float64     // Вероятность верхнего слоя для TerrainFlat
	NoiseScale     float64     // Масштаб шума для TerrainPerlin
}

// NewTerrainGenerator создаёт генератор ровного поля с параметрами по умолчанию
func NewTerrainGenerator(width, height int, seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		Width:          width,
		Height:         height,
		Seed:           seed,
		Mode:           TerrainFlat,
		TopLayerChance: DefaultTopLayerChance,
		NoiseScale:     DefaultNoiseScale,
	}
}

// Validate проверяет параметры генератора
func (tg *TerrainGenerator) Validate() error {
	if tg.Width <= 0 || tg.Width%2 != 0 {
		return fmt.Errorf("%w: width must be even and positive, got %d", ErrInvalidTerrain, tg.Width)
	}
	if tg.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidTerrain, tg.Height)
	}
	if tg.TopLayerChance < 0 || tg.TopLayerChance > 1 {
		return fmt.Errorf("%w: top layer chance must be in [0, 1], got %v", ErrInvalidTerrain, tg.TopLayerChance)
	}
	switch tg.Mode {
	case TerrainFlat, "":
	case TerrainPerlin:
		if tg.NoiseScale <= 0 {
			return fmt.Errorf("%w: noise scale must be positive, got %v", ErrInvalidTerrain, tg.NoiseScale)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidTerrain, tg.Mode)
	}
	return nil
}

// Generate проверяет параметры и генерирует блоки
func (tg *TerrainGenerator) Generate() ([]Block, error) {
	if err := tg.Validate(); err != nil {
		return nil, err
	}

	if tg.Mode == TerrainPerlin {
		return tg.generatePerlin(), nil
	}
	rng := rand.New(rand.NewSource(tg.Seed))
	return generateFlat(tg.Width, tg.Height, tg.TopLayerChance, rng), nil
}

// GenerateTerrain строит поле width x width колонн с центром в начале координат.
// В каждой колонне слои y = 0..height-1; два верхних - дёрн, ниже - плитка.
// Самый верхний слой появляется с вероятностью 0.4, остальные всегда.
func GenerateTerrain(width, height int, rng *rand.Rand) []Block {
	return generateFlat(width, height, DefaultTopLayerChance, rng)
}

func generateFlat(width, height int, topChance float64, rng *rand.Rand) []Block {
	capacity := width * width * height
	if capacity < 0 {
		capacity = 0
	}
	blocks := make([]Block, 0, capacity)

	for x := -width / 2; x < width/2; x++ {
		for z := -width / 2; z < width/2; z++ {
			for y := 0; y < height; y++ {
				if y == height-1 && rng.Float64() >= topChance {
					continue
				}
				blocks = append(blocks, NewBlock(vec.Vec3{X: x, Y: y, Z: z}, layerMaterial(y, height)))
			}
		}
	}
	return blocks
}

// generatePerlin строит колонны переменной высоты 1..Height по шуму Перлина
func (tg *TerrainGenerator) generatePerlin() []Block {
	noise := util.NewHeightNoise(tg.Seed)
	blocks := make([]Block, 0, tg.Width*tg.Width*tg.Height)

	for x := -tg.Width / 2; x < tg.Width/2; x++ {
		for z := -tg.Width / 2; z < tg.Width/2; z++ {
			column := vec.Vec2{X: x, Y: z}
			n := noise.Noise2D(float64(x)*tg.NoiseScale, float64(z)*tg.NoiseScale)
			columnHeight := 1 + int(n*float64(tg.Height-1)+0.5)
			if columnHeight > tg.Height {
				columnHeight = tg.Height
			}

			for y := 0; y < columnHeight; y++ {
				blocks = append(blocks, NewBlock(column.ToVec3(y), layerMaterial(y, columnHeight)))
			}
		}
	}
	return blocks
}

// layerMaterial - дёрн на двух верхних слоях колонны, плитка ниже
func layerMaterial(y, height int) block.BlockID {
	if y >= height-turfLayers {
		return block.TurfBlockID
	}
	return block.TileBlockID
}
