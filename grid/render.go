package grid

import (
	"fmt"
	"strings"

	"github.com/gridrl/tabular/core"
)

// Console rendering of layouts, policies and value functions. This is
// presentation only; nothing here feeds back into the solvers.

var kindSymbols = map[Kind]string{
	Path:  ".",
	Wall:  "#",
	Start: "S",
	Goal:  "G",
	Cliff: "~",
}

var moveSymbols = map[string]string{
	"N": "^",
	"S": "v",
	"W": "<",
	"E": ">",
}

// Render draws the layout.
func (w *World) Render() string {
	var b strings.Builder
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			b.WriteString(kindSymbols[w.cells[r][c]])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPolicy draws the policy's action arrows over the layout. Walls,
// cliffs, the start and the goal keep their layout symbols.
func (w *World) RenderPolicy(policy core.Policy) string {
	var b strings.Builder
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			p := Pos{r, c}
			k := w.cells[r][c]
			if k == Path {
				if a, ok := policy[p.Hash()]; ok {
					b.WriteString(moveSymbols[a.Hash()])
					continue
				}
			}
			b.WriteString(kindSymbols[k])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderValues draws the value function as a grid of fixed-width numbers.
func (w *World) RenderValues(v core.ValueFunction) string {
	var b strings.Builder
	for r := 0; r < w.height; r++ {
		for c := 0; c < w.width; c++ {
			p := Pos{r, c}
			if w.cells[r][c] == Wall {
				b.WriteString("    ####")
				continue
			}
			fmt.Fprintf(&b, " %7.2f", v[p.Hash()])
		}
		b.WriteString("\n")
	}
	return b.String()
}
