// Package td implements model-free temporal-difference control:
// Q-learning, SARSA, Expected SARSA and n-step SARSA, all sharing an
// epsilon-greedy behavior policy over a lazily grown Q-table.
package td

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/gridrl/tabular/core"
)

// QTable maps state hashes to per-action value estimates. Rows are
// created on first access, zero-initialized for the full action set at
// once, never partially.
type QTable struct {
	table   map[string]map[string]float64
	actions []string
}

// NewQTable builds an empty table over a fixed action ordering. The
// ordering also decides deterministic greedy tie-breaks.
func NewQTable(actions []core.Action) *QTable {
	hashes := make([]string, len(actions))
	for i, a := range actions {
		hashes[i] = a.Hash()
	}
	return &QTable{
		table:   make(map[string]map[string]float64),
		actions: hashes,
	}
}

// Row returns the state's action-value row, materializing a zero row on
// first touch.
func (q *QTable) Row(state string) map[string]float64 {
	row, ok := q.table[state]
	if !ok {
		row = make(map[string]float64, len(q.actions))
		for _, a := range q.actions {
			row[a] = 0
		}
		q.table[state] = row
	}
	return row
}

func (q *QTable) Get(state, action string) float64 {
	return q.Row(state)[action]
}

func (q *QTable) Set(state, action string, val float64) {
	q.Row(state)[action] = val
}

// Max returns the largest value in the state's row.
func (q *QTable) Max(state string) float64 {
	row := q.Row(state)
	max := row[q.actions[0]]
	for _, a := range q.actions[1:] {
		if row[a] > max {
			max = row[a]
		}
	}
	return max
}

// Greedy returns the first maximal action in the fixed ordering.
func (q *QTable) Greedy(state string) string {
	row := q.Row(state)
	best := q.actions[0]
	for _, a := range q.actions[1:] {
		if row[a] > row[best] {
			best = a
		}
	}
	return best
}

// GreedySet returns every action attaining the row maximum, in the
// fixed ordering.
func (q *QTable) GreedySet(state string) []string {
	row := q.Row(state)
	max := q.Max(state)
	ties := make([]string, 0, len(q.actions))
	for _, a := range q.actions {
		if row[a] == max {
			ties = append(ties, a)
		}
	}
	return ties
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.table[state]
	return ok
}

func (q *QTable) Size() int {
	return len(q.table)
}

// States lists the visited state hashes in sorted order.
func (q *QTable) States() []string {
	states := make([]string, 0, len(q.table))
	for s := range q.table {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// Record dumps the table as JSONL, one state row per line.
func (q *QTable) Record(path string) error {
	bs := new(bytes.Buffer)
	for _, state := range q.States() {
		line := map[string]interface{}{
			"state":   state,
			"entries": q.table[state],
		}
		lineBS, err := json.Marshal(line)
		if err != nil {
			return err
		}
		bs.Write(lineBS)
		bs.WriteByte('\n')
	}
	return os.WriteFile(path, bs.Bytes(), 0644)
}

// Read restores rows from a JSONL dump produced by Record.
func (q *QTable) Read(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		in := struct {
			State   string             `json:"state"`
			Entries map[string]float64 `json:"entries"`
		}{}
		if err := json.Unmarshal(scanner.Bytes(), &in); err != nil {
			return fmt.Errorf("error reading file contents: %w", err)
		}
		row := q.Row(in.State)
		for a, v := range in.Entries {
			row[a] = v
		}
	}
	return scanner.Err()
}
