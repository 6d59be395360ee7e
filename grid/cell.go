package grid

import "fmt"

// Kind classifies a grid cell. The numeric values match the layout
// legend used by the layout literals in this package.
type Kind int

const (
	Path Kind = iota
	Wall
	Start
	Goal
	Cliff
)

func (k Kind) String() string {
	switch k {
	case Path:
		return "path"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Goal:
		return "goal"
	case Cliff:
		return "cliff"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// effect describes what happens when the agent moves into a cell of a
// given kind. Out-of-bounds moves are treated as moves into a wall.
// A single outcome table covers both the plain maze and the cliff walk,
// so no environment hierarchy is needed.
type effect struct {
	blocked bool // stay in place
	reset   bool // fall back to the start cell
	done    bool
	reward  float64
}

func outcomeTable(cfg Config) map[Kind]effect {
	return map[Kind]effect{
		Path:  {reward: cfg.StepReward},
		Start: {reward: cfg.StepReward},
		Wall:  {blocked: true, reward: cfg.StepReward},
		Cliff: {reset: true, reward: cfg.CliffReward},
		Goal:  {done: true, reward: cfg.GoalReward},
	}
}
