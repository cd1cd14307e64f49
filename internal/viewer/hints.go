package viewer

import "github.com/foldworks/contigctl/pkg/types"

// Representations a host viewer is expected to support.
const (
	ReprCartoon = "cartoon"
	ReprSticks  = "sticks"
	ReprLines   = "lines"
)

// Colors used by the standard plan.
const (
	ColorCyan   = "cyan"
	ColorGreen  = "green"
	ColorOrange = "orange"
	ColorPurple = "purple"
)

// Highlight names one residue group and how to draw it.
type Highlight struct {
	Group    string             // Stable group name, e.g. "frozen_bt".
	Residues []types.ResidueKey // Sorted; empty for whole-object groups.
	Repr     string
	Color    string
}

// Plan builds the rendering plan for a session: the whole protein as cyan
// cartoon, fully frozen residues as green sticks, backbone-only residues as
// orange lines, and the ligand (if any) as purple sticks. Groups with no
// residues are omitted, except the protein base group which is always first.
func Plan(s *types.DesignSession, hasLigand bool) []Highlight {
	plan := []Highlight{
		{Group: "protein", Repr: ReprCartoon, Color: ColorCyan},
	}

	if frozen := s.WithStates(types.StateFrozen); len(frozen) > 0 {
		plan = append(plan, Highlight{
			Group: "frozen_bt", Residues: frozen, Repr: ReprSticks, Color: ColorGreen,
		})
	}
	if backbone := s.WithStates(types.StateBackboneOnly); len(backbone) > 0 {
		plan = append(plan, Highlight{
			Group: "frozen_b", Residues: backbone, Repr: ReprLines, Color: ColorOrange,
		})
	}
	if hasLigand {
		plan = append(plan, Highlight{
			Group: "ligand", Repr: ReprSticks, Color: ColorPurple,
		})
	}
	return plan
}
