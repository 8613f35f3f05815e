package editor

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/annel0/tinycraft/internal/logging"
	"github.com/annel0/tinycraft/internal/vec"
	"github.com/annel0/tinycraft/internal/world"
	"github.com/annel0/tinycraft/internal/world/block"
)

// Значения по умолчанию
const (
	DefaultReach         float32 = 10
	DefaultBreakCooldown         = 100 * time.Millisecond
	DefaultPlaceCooldown         = 100 * time.Millisecond
)

// ActionKind - тип действия редактора
type ActionKind int

const (
	ActionBreak ActionKind = iota
	ActionPlace
)

func (k ActionKind) String() string {
	if k == ActionPlace {
		return "place"
	}
	return "break"
}

// Outcome - результат действия
type Outcome int

const (
	OutcomeApplied   Outcome = iota // Мир изменён
	OutcomeMissed                   // Луч ни во что не попал
	OutcomeCooldown                 // Не истёк интервал с прошлого действия
	OutcomeOccupied                 // Клетка для нового блока занята
	OutcomeEmptyHand                // В руке нет материала
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeMissed:
		return "missed"
	case OutcomeCooldown:
		return "cooldown"
	case OutcomeOccupied:
		return "occupied"
	case OutcomeEmptyHand:
		return "empty_hand"
	default:
		return "unknown"
	}
}

// Action описывает выполненное (или отклонённое) действие
type Action struct {
	Kind    ActionKind
	Outcome Outcome
	Hit     world.RayHit
	Pos     vec.Vec3 // Удалённый или поставленный блок
}

// Applied сообщает, изменил ли мир этот вызов
func (a Action) Applied() bool {
	return a.Outcome == OutcomeApplied
}

// RaycastMode выбирает алгоритм поиска блока под прицелом
type RaycastMode string

const (
	RaycastScan RaycastMode = "scan" // Линейный обход всех блоков
	RaycastGrid RaycastMode = "grid" // Обход клеток сетки вдоль луча
)

// ParseRaycastMode разбирает режим из конфигурации; пустая строка - scan
func ParseRaycastMode(s string) (RaycastMode, error) {
	switch RaycastMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RaycastScan:
		return RaycastScan, nil
	case RaycastGrid:
		return RaycastGrid, nil
	default:
		return RaycastScan, fmt.Errorf("unknown raycast mode %q", s)
	}
}

// Options - параметры редактора
type Options struct {
	Reach         float32
	Raycast       RaycastMode
	BreakCooldown time.Duration
	PlaceCooldown time.Duration
	Held          block.HeldItem
	Metrics       *Metrics
}

// Editor переводит события ввода в изменения мира: разрушение и установку блоков
type Editor struct {
	world         *world.World
	reach         float32
	raycast       RaycastMode
	breakCooldown time.Duration
	placeCooldown time.Duration
	lastBreak     time.Time
	lastPlace     time.Time
	held          block.HeldItem
	metrics       *Metrics
	sessionID     uuid.UUID
	log           *logging.Logger
}

// New создаёт редактор для мира w. Неположительная дальность и отрицательные интервалы
// заменяются значениями по умолчанию; нулевой интервал отключает ограничение.
func New(w *world.World, opts Options) *Editor {
	if opts.Reach <= 0 {
		opts.Reach = DefaultReach
	}
	if opts.Raycast != RaycastGrid {
		opts.Raycast = RaycastScan
	}
	if opts.BreakCooldown < 0 {
		opts.BreakCooldown = DefaultBreakCooldown
	}
	if opts.PlaceCooldown < 0 {
		opts.PlaceCooldown = DefaultPlaceCooldown
	}

	e := &Editor{
		world:         w,
		reach:         opts.Reach,
		raycast:       opts.Raycast,
		breakCooldown: opts.BreakCooldown,
		placeCooldown: opts.PlaceCooldown,
		held:          opts.Held,
		metrics:       opts.Metrics,
		sessionID:     uuid.New(),
		log:           logging.GetEditorLogger(),
	}
	e.log.Debug("Editor session %s started (reach=%.1f, raycast=%s, held=%s)", e.sessionID, e.reach, e.raycast, e.held)
	return e
}

// SessionID возвращает идентификатор сессии редактирования для корреляции логов
func (e *Editor) SessionID() uuid.UUID {
	return e.sessionID
}

// Held возвращает текущий предмет в руке
func (e *Editor) Held() block.HeldItem {
	return e.held
}

// Hold меняет предмет в руке
func (e *Editor) Hold(item block.HeldItem) {
	e.held = item
}

// Select выбирает предмет по номеру слота хотбара
func (e *Editor) Select(slot int) block.HeldItem {
	e.held = block.HotbarSlot(slot)
	return e.held
}

// Target возвращает блок под прицелом без изменения мира
func (e *Editor) Target(origin, direction mgl32.Vec3) world.RayHit {
	var hit world.RayHit
	if e.raycast == RaycastGrid {
		hit = e.world.RaycastGrid(origin, direction, e.reach)
	} else {
		hit = e.world.Raycast(origin, direction, e.reach)
	}
	e.metrics.observeRaycast(hit.Found())
	return hit
}

// cooldownElapsed повторяет правило цикла кадра: действие разрешено,
// если с прошлого прошло строго больше интервала
func cooldownElapsed(now, last time.Time, cooldown time.Duration) bool {
	return last.IsZero() || now.Sub(last) > cooldown
}

// Break разрушает блок под прицелом
func (e *Editor) Break(now time.Time, origin, direction mgl32.Vec3) Action {
	hit := e.Target(origin, direction)
	action := Action{Kind: ActionBreak, Hit: hit}

	switch {
	case !hit.Found():
		action.Outcome = OutcomeMissed
	case !cooldownElapsed(now, e.lastBreak, e.breakCooldown):
		action.Outcome = OutcomeCooldown
	default:
		b, _ := e.world.At(hit.Pos)
		e.world.Remove(b.Pos)
		e.lastBreak = now
		action.Outcome = OutcomeApplied
		action.Pos = b.Pos
		e.log.LogBlockEdit("removed", b.Pos.X, b.Pos.Y, b.Pos.Z, b.ID.String())
	}

	e.finish(action)
	return action
}

// Place ставит блок из руки на грань блока под прицелом
func (e *Editor) Place(now time.Time, origin, direction mgl32.Vec3) Action {
	hit := e.Target(origin, direction)
	action := Action{Kind: ActionPlace, Hit: hit}

	spawn, ok := hit.Adjacent()
	id, holding := e.held.Get()

	switch {
	case !ok:
		action.Outcome = OutcomeMissed
	case !holding:
		action.Outcome = OutcomeEmptyHand
	case e.world.Has(spawn):
		action.Outcome = OutcomeOccupied
	case !cooldownElapsed(now, e.lastPlace, e.placeCooldown):
		action.Outcome = OutcomeCooldown
	default:
		err := e.world.Add(world.NewBlock(spawn, id))
		if errors.Is(err, world.ErrPositionOccupied) {
			action.Outcome = OutcomeOccupied
			break
		}
		e.lastPlace = now
		action.Outcome = OutcomeApplied
		action.Pos = spawn
		e.log.LogBlockEdit("placed", spawn.X, spawn.Y, spawn.Z, id.String())
	}

	e.finish(action)
	return action
}

// Apply выполняет действия для фронтов кнопок одного кадра: сначала разрушение, затем установку
func (e *Editor) Apply(now time.Time, edges Edges, origin, direction mgl32.Vec3) []Action {
	var actions []Action
	if edges.Break {
		actions = append(actions, e.Break(now, origin, direction))
	}
	if edges.Place {
		actions = append(actions, e.Place(now, origin, direction))
	}
	return actions
}

func (e *Editor) finish(a Action) {
	e.metrics.observeAction(a.Kind, a.Outcome, e.world.Len())
	if !a.Applied() {
		e.log.Trace("Session %s: %s rejected (%s)", e.sessionID, a.Kind, a.Outcome)
	}
}
