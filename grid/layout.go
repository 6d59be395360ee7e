package grid

import (
	"fmt"
	"sort"
)

// Predefined layouts. Legend: 0 path, 1 wall, 2 start, 3 goal, 4 cliff.

// Maze1 is a small maze for quick experiments and tests.
var Maze1 = [][]int{
	{2, 0, 0, 1, 0},
	{1, 1, 0, 1, 0},
	{0, 0, 0, 0, 0},
	{0, 1, 1, 1, 0},
	{0, 0, 0, 0, 3},
}

// Maze2 is a 4x11 maze whose bottom row is entirely hazardous between
// the start and the goal.
var Maze2 = [][]int{
	{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0},
	{0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0},
	{2, 4, 4, 4, 4, 4, 4, 4, 4, 4, 3},
}

// CliffWalk1 is a 3x3 cliff walk for basic debugging.
var CliffWalk1 = [][]int{
	{2, 0, 4},
	{4, 0, 0},
	{0, 0, 3},
}

// CliffWalk2 is a 5x5 layout mixing walls and cliffs, with the goal
// partially enclosed.
var CliffWalk2 = [][]int{
	{0, 0, 0, 0, 0},
	{0, 4, 1, 1, 0},
	{0, 4, 3, 1, 0},
	{0, 4, 0, 1, 0},
	{2, 4, 0, 0, 0},
}

// CliffWalk3 is the classic 4x12 cliff walk from Sutton and Barto: the
// entire bottom row between start and goal is a cliff.
var CliffWalk3 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{2, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 3},
}

// CliffWalk4 is a large 21x21 maze riddled with cliff tiles, useful for
// stressing the learners on a dangerous layout.
var CliffWalk4 = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 4, 0, 0, 0, 4, 0, 0, 0, 0, 0, 4, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 4, 0, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 1},
	{1, 0, 4, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 4, 0, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 4, 0, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 4, 0, 1, 0, 4, 0, 1},
	{1, 4, 4, 0, 1, 0, 4, 0, 4, 4, 4, 4, 4, 4, 4, 0, 1, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 0, 0, 0, 0, 4, 0, 0, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 1, 1, 1, 0, 4, 0, 1, 1, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 0, 0, 1},
	{1, 0, 0, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 0, 0, 0, 0, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 1, 1, 1, 1, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 4, 0, 0, 0, 0, 0, 1, 0, 4, 0, 1, 0, 4, 0, 1},
	{1, 4, 4, 0, 1, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 1, 0, 4, 0, 1},
	{1, 0, 0, 0, 1, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 4, 0, 1},
	{1, 0, 4, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 0, 4, 4, 1},
	{1, 0, 4, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 0, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 0, 1},
	{1, 0, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

var layouts = map[string][][]int{
	"maze1":      Maze1,
	"maze2":      Maze2,
	"cliffwalk1": CliffWalk1,
	"cliffwalk2": CliffWalk2,
	"cliffwalk3": CliffWalk3,
	"cliffwalk4": CliffWalk4,
}

// Layout looks up a named layout.
func Layout(name string) ([][]int, error) {
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (known: %v)", name, LayoutNames())
	}
	return l, nil
}

func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
