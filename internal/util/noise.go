package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина для карты высот
const (
	perlinAlpha   = 2.0 // Сглаживание шума
	perlinBeta    = 2.0 // Частота шума
	perlinOctaves = 3   // Количество октав
)

// HeightNoise - генератор шума Перлина с собственным сидом.
// Экземпляр принадлежит генератору ландшафта, глобального состояния нет.
type HeightNoise struct {
	perlin *perlin.Perlin
}

// NewHeightNoise создаёт генератор шума с указанным сидом
func NewHeightNoise(seed int64) *HeightNoise {
	return &HeightNoise{
		perlin: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
	}
}

// Noise2D возвращает значение шума для указанных координат в диапазоне [0, 1]
func (h *HeightNoise) Noise2D(x, y float64) float64 {
	// Значение шума примерно в [-1, 1]
	noise := (h.perlin.Noise2D(x, y) + 1.0) / 2.0

	if noise < 0 {
		return 0
	}
	if noise > 1 {
		return 1
	}
	return noise
}
