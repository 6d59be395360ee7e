package cmd

import (
	"path"

	"github.com/gridrl/tabular/util"
)

type Flags struct {
	SavePath string
	Layout   string
	Seed     uint64

	DPFlags
	TDFlags
}

type DPFlags struct {
	Gamma         float64
	Theta         float64
	Truncate      int
	MaxIterations int
}

type TDFlags struct {
	Alpha           float64
	TDGamma         float64
	Epsilon         float64
	Episodes        int
	NSteps          int
	MaxEpisodeSteps int
}

func DefaultFlags() *Flags {
	return &Flags{
		SavePath: "results",
		Layout:   "",
		Seed:     0,
		DPFlags: DPFlags{
			Gamma:         0.9,
			Theta:         1e-6,
			Truncate:      5,
			MaxIterations: 100000,
		},
		TDFlags: TDFlags{
			Alpha:           0.5,
			TDGamma:         1.0,
			Epsilon:         0.1,
			Episodes:        500,
			NSteps:          5,
			MaxEpisodeSteps: 1000,
		},
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
