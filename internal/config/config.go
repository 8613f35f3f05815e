package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/annel0/tinycraft/internal/editor"
	"github.com/annel0/tinycraft/internal/logging"
	"github.com/annel0/tinycraft/internal/world"
	"github.com/annel0/tinycraft/internal/world/block"
)

// Переменные окружения
const (
	EnvConfigPath  = "TINYCRAFT_CONFIG"
	EnvMetricsPort = "TINYCRAFT_METRICS_PORT"
)

const defaultMetricsPort = 2112

// ErrInvalidConfig возвращается Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config корневая структура конфигурации приложения.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Editor  EditorConfig  `yaml:"editor"`
	Metrics MetricsConfig `yaml:"metrics"`
	Logging LoggingConfig `yaml:"logging"`
}

type TerrainConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Seed           int64   `yaml:"seed"`
	Mode           string  `yaml:"mode"`
	TopLayerChance float64 `yaml:"top_layer_chance"`
	NoiseScale     float64 `yaml:"noise_scale"`
}

type EditorConfig struct {
	Reach         float32       `yaml:"reach"`
	Raycast       string        `yaml:"raycast"` // scan | grid
	BreakCooldown time.Duration `yaml:"break_cooldown"`
	PlaceCooldown time.Duration `yaml:"place_cooldown"`
	Material      string        `yaml:"material"` // Пустая строка - пустая рука
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"` // Каталог для файловых логов; пусто - только консоль
}

// Default возвращает конфигурацию с исходными константами игры
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Width:          32,
			Height:         4,
			Seed:           1,
			Mode:           string(world.TerrainFlat),
			TopLayerChance: world.DefaultTopLayerChance,
			NoiseScale:     world.DefaultNoiseScale,
		},
		Editor: EditorConfig{
			Reach:         10,
			Raycast:       string(editor.RaycastScan),
			BreakCooldown: 100 * time.Millisecond,
			PlaceCooldown: 100 * time.Millisecond,
			Material:      "tile",
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// GetPort возвращает порт метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, EnvMetricsPort, defaultMetricsPort)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Load читает YAML файл конфигурации поверх Default().
// Если path == "", берёт путь из TINYCRAFT_CONFIG; если и он пуст, возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Generator собирает генератор ландшафта из секции terrain
func (c *Config) Generator() *world.TerrainGenerator {
	tg := world.NewTerrainGenerator(c.Terrain.Width, c.Terrain.Height, c.Terrain.Seed)
	if c.Terrain.Mode != "" {
		tg.Mode = world.TerrainMode(c.Terrain.Mode)
	}
	tg.TopLayerChance = c.Terrain.TopLayerChance
	tg.NoiseScale = c.Terrain.NoiseScale
	return tg
}

// HeldItem возвращает стартовый предмет в руке
func (c *Config) HeldItem() (block.HeldItem, error) {
	if c.Editor.Material == "" {
		return block.EmptyHand(), nil
	}
	id, err := block.ParseBlockID(c.Editor.Material)
	if err != nil {
		return block.EmptyHand(), err
	}
	return block.Holding(id), nil
}

// RaycastMode возвращает алгоритм трассировки редактора
func (c *Config) RaycastMode() (editor.RaycastMode, error) {
	return editor.ParseRaycastMode(c.Editor.Raycast)
}

// LogLevel разбирает уровень логирования; пустая строка - INFO
func (c *Config) LogLevel() (logging.LogLevel, error) {
	if c.Logging.Level == "" {
		return logging.INFO, nil
	}
	return logging.ParseLevel(c.Logging.Level)
}

// Validate проверяет согласованность всех секций
func (c *Config) Validate() error {
	if err := c.Generator().Validate(); err != nil {
		return fmt.Errorf("%w: terrain: %w", ErrInvalidConfig, err)
	}
	if c.Editor.Reach <= 0 {
		return fmt.Errorf("%w: editor: reach must be positive, got %v", ErrInvalidConfig, c.Editor.Reach)
	}
	if c.Editor.BreakCooldown < 0 || c.Editor.PlaceCooldown < 0 {
		return fmt.Errorf("%w: editor: cooldowns must not be negative", ErrInvalidConfig)
	}
	if _, err := c.RaycastMode(); err != nil {
		return fmt.Errorf("%w: editor: %w", ErrInvalidConfig, err)
	}
	if _, err := c.HeldItem(); err != nil {
		return fmt.Errorf("%w: editor: %w", ErrInvalidConfig, err)
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return fmt.Errorf("%w: metrics: port out of range: %d", ErrInvalidConfig, c.Metrics.Port)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: logging: %w", ErrInvalidConfig, err)
	}
	return nil
}
