package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/annel0/tinycraft/internal/camera"
	"github.com/annel0/tinycraft/internal/config"
	"github.com/annel0/tinycraft/internal/editor"
	"github.com/annel0/tinycraft/internal/logging"
	"github.com/annel0/tinycraft/internal/render"
	"github.com/annel0/tinycraft/internal/world"
	_ "github.com/annel0/tinycraft/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (по умолчанию $TINYCRAFT_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	if err := logging.InitDefaultLogger("tinycraft", cfg.Logging.Dir); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()
	defer logging.GetLoggerManager().CloseAll()

	level, _ := cfg.LogLevel()
	logging.SetDefaultLevel(level)
	logging.GetLoggerManager().SetLevel(level)

	// === МИР ===
	gen := cfg.Generator()
	blocks, err := gen.Generate()
	if err != nil {
		log.Fatalf("❌ Ошибка генерации ландшафта: %v", err)
	}
	w, err := world.NewWorld(blocks)
	if err != nil {
		log.Fatalf("❌ Ошибка создания мира: %v", err)
	}
	for slot, path := range render.TexturePaths() {
		logging.Debug("Текстура слота %d: %s", slot, path)
	}
	logging.Info("🌍 Ландшафт %s %dx%d (seed=%d): %d блоков", gen.Mode, gen.Width, gen.Height, gen.Seed, w.Len())

	// === МЕТРИКИ ===
	var (
		metrics *editor.Metrics
		srv     *http.Server
	)
	if cfg.Metrics.Enabled {
		reg := newRegistry()
		metrics = editor.NewMetrics(reg)
		srv = startMetricsServer(cfg.Metrics.GetPort(), reg)
	}
	defer stopMetricsServer(srv)

	held, _ := cfg.HeldItem()
	mode, _ := cfg.RaycastMode()
	ed := editor.New(w, editor.Options{
		Reach:         cfg.Editor.Reach,
		Raycast:       mode,
		BreakCooldown: cfg.Editor.BreakCooldown,
		PlaceCooldown: cfg.Editor.PlaceCooldown,
		Held:          held,
		Metrics:       metrics,
	})

	cam := camera.New()
	// Над центром поля, взгляд вниз под углом
	cam.Pos = mgl32.Vec3{0, float32(gen.Height) + 2, 0}
	cam.Pitch = -45

	s := newSession(w, ed, cam, os.Stdout)
	logging.Info("✅ Сессия %s готова. Команды: look, goto, move, target, break, place, select, stats, quit", ed.SessionID())

	done := make(chan error, 1)
	go func() { done <- s.run(os.Stdin) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil {
			logging.Error("Ошибка чтения команд: %v", err)
		}
		logging.Info("👋 Итог: %d блоков", w.Len())
	case sig := <-sigCh:
		logging.Info("📡 Получен сигнал %v, завершение работы...", sig)
	}
}
