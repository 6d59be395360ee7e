package grid

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/gridrl/tabular/core"
)

func TestWorldConstruction(t *testing.T) {
	Convey("Building a world from a layout", t, func() {
		Convey("A valid layout yields one start and one goal", func() {
			w, err := NewWorld(CliffWalk1, DefaultConfig())
			So(err, ShouldBeNil)
			So(w.Start().Hash(), ShouldEqual, "0,0")
			So(w.Goal().Hash(), ShouldEqual, "2,2")
		})

		Convey("A layout without a goal is rejected", func() {
			_, err := NewWorld([][]int{{2, 0}, {0, 0}}, DefaultConfig())
			So(err, ShouldNotBeNil)
		})

		Convey("A layout with two starts is rejected", func() {
			_, err := NewWorld([][]int{{2, 2}, {0, 3}}, DefaultConfig())
			So(err, ShouldNotBeNil)
		})

		Convey("A ragged layout is rejected", func() {
			_, err := NewWorld([][]int{{2, 0, 3}, {0, 0}}, DefaultConfig())
			So(err, ShouldNotBeNil)
		})

		Convey("States exclude walls and include the goal exactly once", func() {
			w, err := NewWorld(CliffWalk2, DefaultConfig())
			So(err, ShouldBeNil)
			goals := 0
			for _, s := range w.States() {
				So(w.KindAt(s.(Pos)), ShouldNotEqual, Wall)
				if s.Hash() == w.Goal().Hash() {
					goals++
				}
			}
			So(goals, ShouldEqual, 1)
		})
	})
}

func TestWorldStep(t *testing.T) {
	Convey("Stepping through a cliff walk", t, func() {
		w := MustWorld(CliffWalk3, DefaultConfig())

		Convey("An ordinary move costs the step reward", func() {
			out, err := w.Step(Pos{3, 0}, North)
			So(err, ShouldBeNil)
			So(out.Next, ShouldResemble, core.State(Pos{2, 0}))
			So(out.Reward, ShouldEqual, -1)
			So(out.Done, ShouldBeFalse)
		})

		Convey("Moving out of bounds keeps the agent in place", func() {
			out, err := w.Step(Pos{0, 0}, North)
			So(err, ShouldBeNil)
			So(out.Next, ShouldResemble, core.State(Pos{0, 0}))
			So(out.Reward, ShouldEqual, -1)
		})

		Convey("Falling into the cliff resets to the start with the penalty", func() {
			out, err := w.Step(Pos{2, 4}, South)
			So(err, ShouldBeNil)
			So(out.Next, ShouldResemble, w.Start())
			So(out.Reward, ShouldEqual, -100)
			So(out.Done, ShouldBeFalse)
		})

		Convey("Reaching the goal terminates the episode", func() {
			out, err := w.Step(Pos{2, 11}, South)
			So(err, ShouldBeNil)
			So(out.Next, ShouldResemble, w.Goal())
			So(out.Reward, ShouldEqual, 0)
			So(out.Done, ShouldBeTrue)
		})

		Convey("The goal state is an absorbing zero-reward self-loop", func() {
			out, err := w.Step(w.Goal(), East)
			So(err, ShouldBeNil)
			So(out.Next, ShouldResemble, w.Goal())
			So(out.Reward, ShouldEqual, 0)
			So(out.Done, ShouldBeTrue)
		})

		Convey("An unknown action is an InvalidAction error", func() {
			_, err := w.Step(Pos{0, 0}, Move{name: "UP"})
			So(errors.Is(err, core.ErrInvalidAction), ShouldBeTrue)
		})
	})

	Convey("Walls block movement", t, func() {
		w := MustWorld(CliffWalk2, DefaultConfig())
		out, err := w.Step(Pos{1, 0}, East)
		So(err, ShouldBeNil)
		// (1,1) is a cliff, so this resets; (0,4)->South hits a path.
		So(out.Next, ShouldResemble, w.Start())

		out, err = w.Step(Pos{0, 2}, South)
		So(err, ShouldBeNil)
		So(out.Next, ShouldResemble, core.State(Pos{0, 2}))
		So(out.Reward, ShouldEqual, -1)
	})
}
