package core

import "errors"

// ErrInvalidAction is returned by Model.Step when the action is not part
// of the model's action set. This is a programming error and is expected
// to propagate to the caller.
var ErrInvalidAction = errors.New("invalid action")

type State interface {
	Hash() string
}

type Action interface {
	Hash() string
}

// StepResult is the outcome of taking an action in a state.
type StepResult struct {
	Next   State
	Reward float64
	Done   bool
}

// Model is the environment contract shared by the DP solvers and the TD
// learners. The DP solvers query Step for arbitrary states (full-model
// access); the TD learners only ever call it at the state they currently
// occupy (online access).
//
// Exactly one state is the goal. Step on the goal state is a self-loop
// with zero reward and Done=true, so callers that do not special-case the
// goal still terminate correctly.
type Model interface {
	// States enumerates the finite, non-empty state set.
	States() []State
	// Actions returns the ordered action set, identical for every
	// non-goal state.
	Actions() []Action
	Start() State
	Goal() State
	Step(State, Action) (StepResult, error)
}
