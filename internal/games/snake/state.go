package snake

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/ecs"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Kind tags what a game object is.
type Kind int

const (
	KindHead Kind = iota + 1
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Size is the nominal footprint of an object relative to one cell.
// Renderers use it to pick how much of the cell to fill.
type Size struct {
	Width  float64
	Height float64
}

// Square returns a Size with equal sides.
func Square(v float64) Size {
	return Size{Width: v, Height: v}
}

// Nominal sizes of the visible objects.
var (
	HeadSize    = Square(0.8)
	SegmentSize = Square(0.65)
	FoodSize    = Square(0.8)
)

// Head is the component carried by the chain's first member.
type Head struct {
	Direction grid.Direction
	// Moved is true once the head advanced at least one tick since the
	// last accepted direction change.
	Moved bool
}

// Object is a read-only view of one visible game object.
type Object struct {
	Entity   ecs.Entity
	Kind     Kind
	Position grid.Position
	Size     Size
}

// Options configures a State.
type Options struct {
	Arena        grid.Arena
	MoveInterval time.Duration
	FoodInterval time.Duration
	StartHead    grid.Position
	StartTail    grid.Position
	StartDir     grid.Direction
	Seed         uint64
	Logger       *log.Logger
}

// OptionsFromConfig builds State options from a loaded configuration.
func OptionsFromConfig(cfg config.SnakeConfig, seed int64) Options {
	return Options{
		Arena:        cfg.GridArena(),
		MoveInterval: cfg.MoveInterval(),
		FoodInterval: cfg.FoodInterval(),
		StartHead:    cfg.StartHead(),
		StartTail:    cfg.StartTail(),
		StartDir:     cfg.StartDirection(),
		Seed:         uint64(seed),
	}
}

// State is the complete game state machine. It owns every game object and
// is advanced one frame at a time by Frame. Nothing outside the stages in
// this package mutates it.
type State struct {
	opts Options

	world     *ecs.World
	positions *ecs.Store[grid.Position]
	sizes     *ecs.Store[Size]
	kinds     *ecs.Store[Kind]
	heads     *ecs.Store[Head]

	// chain holds the snake, head first, then body segments head-to-tail.
	chain []ecs.Entity

	lastTail    grid.Position
	hasLastTail bool
	buffered    grid.Direction

	growth   signal
	gameOver signal

	moveTimer *Timer
	foodTimer *Timer
	rng       *rand.Rand
	logger    *log.Logger

	events []core.EventKind
	frame  uint64
	resets int
}

// NewState creates a state with a freshly spawned snake and no food.
func NewState(opts Options) *State {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	world := ecs.NewWorld()
	s := &State{
		opts:      opts,
		world:     world,
		positions: ecs.NewStore[grid.Position](world),
		sizes:     ecs.NewStore[Size](world),
		kinds:     ecs.NewStore[Kind](world),
		heads:     ecs.NewStore[Head](world),
		moveTimer: NewTimer(opts.MoveInterval),
		foodTimer: NewTimer(opts.FoodInterval),
		rng:       rand.New(rand.NewSource(opts.Seed)),
		logger:    logger,
	}
	s.spawnSnake()
	return s
}

// spawnSnake creates the head and one tail segment at the start positions.
// Used at startup and by the reset stage.
func (s *State) spawnSnake() {
	head := s.world.Spawn()
	s.positions.Set(head, s.opts.StartHead)
	s.sizes.Set(head, HeadSize)
	s.kinds.Set(head, KindHead)
	s.heads.Set(head, Head{Direction: s.opts.StartDir})

	tail := s.spawnSegment(s.opts.StartTail)
	s.chain = []ecs.Entity{head, tail}
	s.buffered = s.opts.StartDir
}

func (s *State) spawnSegment(pos grid.Position) ecs.Entity {
	e := s.world.Spawn()
	s.positions.Set(e, pos)
	s.sizes.Set(e, SegmentSize)
	s.kinds.Set(e, KindSegment)
	return e
}

func (s *State) spawnFoodAt(pos grid.Position) ecs.Entity {
	e := s.world.Spawn()
	s.positions.Set(e, pos)
	s.sizes.Set(e, FoodSize)
	s.kinds.Set(e, KindFood)
	return e
}

func (s *State) headEntity() ecs.Entity {
	if len(s.chain) < 2 {
		panic(fmt.Sprintf("snake: chain invariant violated, length %d", len(s.chain)))
	}
	return s.chain[0]
}

// entitiesOf returns every live entity of the given kind in spawn order.
func (s *State) entitiesOf(kind Kind) []ecs.Entity {
	var result []ecs.Entity
	for _, e := range s.kinds.Entities() {
		if s.kinds.MustGet(e) == kind {
			result = append(result, e)
		}
	}
	return result
}

// Arena returns the arena dimensions.
func (s *State) Arena() grid.Arena {
	return s.opts.Arena
}

// Head returns the head position and component.
func (s *State) Head() (grid.Position, Head) {
	e := s.headEntity()
	return s.positions.MustGet(e), s.heads.MustGet(e)
}

// Chain returns the positions of all chain members, head first.
func (s *State) Chain() []grid.Position {
	result := make([]grid.Position, len(s.chain))
	for i, e := range s.chain {
		result[i] = s.positions.MustGet(e)
	}
	return result
}

// Food returns the positions of all food objects in spawn order.
func (s *State) Food() []grid.Position {
	foods := s.entitiesOf(KindFood)
	result := make([]grid.Position, len(foods))
	for i, e := range foods {
		result[i] = s.positions.MustGet(e)
	}
	return result
}

// LastTail returns the cell vacated by the tail on the most recent move, if any.
func (s *State) LastTail() (grid.Position, bool) {
	return s.lastTail, s.hasLastTail
}

// Buffered returns the direction stored by the input stage this frame.
func (s *State) Buffered() grid.Direction {
	return s.buffered
}

// Objects returns every visible object. Food comes first so the snake is drawn on top.
func (s *State) Objects() []Object {
	entities := s.entitiesOf(KindFood)
	entities = append(entities, s.chain...)

	result := make([]Object, 0, len(entities))
	for _, e := range entities {
		result = append(result, Object{
			Entity:   e,
			Kind:     s.kinds.MustGet(e),
			Position: s.positions.MustGet(e),
			Size:     s.sizes.MustGet(e),
		})
	}
	return result
}

// Frames returns the number of frames processed.
func (s *State) Frames() uint64 {
	return s.frame
}

// Resets returns how many times the game has reset.
func (s *State) Resets() int {
	return s.resets
}

// Objects alive in the arena, head and segments included.
func (s *State) liveObjects() int {
	return s.world.Len()
}
