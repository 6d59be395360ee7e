package grid

import (
	"fmt"

	"github.com/gridrl/tabular/core"
)

// Pos identifies a cell by row and column.
type Pos struct {
	Row int
	Col int
}

var _ core.State = Pos{}

func (p Pos) Hash() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Move is one of the four compass actions.
type Move struct {
	name string
	dr   int
	dc   int
}

var _ core.Action = Move{}

func (m Move) Hash() string { return m.name }

var (
	North = Move{"N", -1, 0}
	South = Move{"S", 1, 0}
	West  = Move{"W", 0, -1}
	East  = Move{"E", 0, 1}
)

// Moves is the fixed action ordering shared by every non-goal state.
var Moves = []core.Action{North, South, West, East}

// Config carries the per-outcome rewards of a grid world.
type Config struct {
	StepReward  float64
	CliffReward float64
	GoalReward  float64
}

func DefaultConfig() Config {
	return Config{
		StepReward:  -1,
		CliffReward: -100,
		GoalReward:  0,
	}
}

// World is a deterministic grid-world MDP over a rectangular layout of
// cell kinds. It implements core.Model for both the DP solvers (which
// query Step exhaustively) and the TD learners (which step online).
type World struct {
	cells    [][]Kind
	height   int
	width    int
	start    Pos
	goal     Pos
	outcomes map[Kind]effect
	moves    map[string]Move
}

var _ core.Model = &World{}

// NewWorld builds a world from a layout of legend values
// (0 path, 1 wall, 2 start, 3 goal, 4 cliff). The layout must be
// rectangular and contain exactly one start and one goal.
func NewWorld(layout [][]int, cfg Config) (*World, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, fmt.Errorf("empty layout")
	}
	w := &World{
		cells:    make([][]Kind, len(layout)),
		height:   len(layout),
		width:    len(layout[0]),
		outcomes: outcomeTable(cfg),
		moves:    make(map[string]Move),
	}
	for _, a := range Moves {
		m := a.(Move)
		w.moves[m.name] = m
	}

	starts, goals := 0, 0
	for r, row := range layout {
		if len(row) != w.width {
			return nil, fmt.Errorf("layout row %d has %d cells, want %d", r, len(row), w.width)
		}
		w.cells[r] = make([]Kind, w.width)
		for c, v := range row {
			if v < int(Path) || v > int(Cliff) {
				return nil, fmt.Errorf("unknown cell value %d at (%d,%d)", v, r, c)
			}
			k := Kind(v)
			w.cells[r][c] = k
			switch k {
			case Start:
				w.start = Pos{r, c}
				starts++
			case Goal:
				w.goal = Pos{r, c}
				goals++
			}
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("layout has %d start cells, want exactly 1", starts)
	}
	if goals != 1 {
		return nil, fmt.Errorf("layout has %d goal cells, want exactly 1", goals)
	}
	return w, nil
}

// MustWorld is a convenience for the named layouts, which are known to
// be well formed.
func MustWorld(layout [][]int, cfg Config) *World {
	w, err := NewWorld(layout, cfg)
	if err != nil {
		panic(err)
	}
	return w
}

// States lists every non-wall cell in row-major order.
func (w *World) States() []core.State {
	states := make([]core.State, 0, w.height*w.width)
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			if w.cells[r][c] != Wall {
				states = append(states, Pos{r, c})
			}
		}
	}
	return states
}

func (w *World) Actions() []core.Action { return Moves }

func (w *World) Start() core.State { return w.start }

func (w *World) Goal() core.State { return w.goal }

func (w *World) Height() int { return w.height }

func (w *World) Width() int { return w.width }

// KindAt reports the cell kind at a position.
func (w *World) KindAt(p Pos) Kind { return w.cells[p.Row][p.Col] }

// Step applies a move from a state. The goal state is absorbing: it
// self-loops with zero reward and Done=true.
func (w *World) Step(state core.State, action core.Action) (core.StepResult, error) {
	pos, ok := state.(Pos)
	if !ok {
		return core.StepResult{}, fmt.Errorf("state %q is not a grid position", state.Hash())
	}
	if pos == w.goal {
		return core.StepResult{Next: w.goal, Reward: 0, Done: true}, nil
	}
	move, ok := w.moves[action.Hash()]
	if !ok {
		return core.StepResult{}, fmt.Errorf("%w: %q", core.ErrInvalidAction, action.Hash())
	}

	target := Pos{pos.Row + move.dr, pos.Col + move.dc}
	var out effect
	if target.Row < 0 || target.Row >= w.height || target.Col < 0 || target.Col >= w.width {
		out = w.outcomes[Wall]
	} else {
		out = w.outcomes[w.cells[target.Row][target.Col]]
	}

	next := target
	if out.blocked {
		next = pos
	} else if out.reset {
		next = w.start
	}
	return core.StepResult{Next: next, Reward: out.reward, Done: out.done}, nil
}
