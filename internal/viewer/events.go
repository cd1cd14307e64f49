package viewer

import (
	"errors"
	"strings"

	"github.com/foldworks/contigctl/pkg/types"
)

// Editing errors.
var (
	ErrNoSelection = errors.New("no residues selected")
	ErrUnknownCmd  = errors.New("unknown editing command")
)

// Event is a message from the host viewer: either a residue selection or a
// user command.
type Event interface {
	isEvent()
}

// SelectionEvent carries the residues the user currently has selected.
type SelectionEvent struct {
	Residues []types.ResidueKey
}

// StateCommand asks for the current selection to be set to State
// (one of the state constants in pkg/types).
type StateCommand struct {
	State string
}

// DoneCommand ends the editing interaction.
type DoneCommand struct{}

func (SelectionEvent) isEvent() {}
func (StateCommand) isEvent()   {}
func (DoneCommand) isEvent()    {}

// Update is the Editor's answer to an event: how many residues changed,
// whether editing is finished, and the rendering plan reflecting the new
// state. A nil Plan means the display is unchanged.
type Update struct {
	Updated int
	Done    bool
	Plan    []Highlight
}

// Editor applies viewer events to a design session. It holds the staged
// selection between a SelectionEvent and the StateCommand that acts on it;
// the session itself is only mutated by state commands.
type Editor struct {
	session   *types.DesignSession
	hasLigand bool
	chains    string // allowed chain letters; selections outside are dropped
	selection []types.ResidueKey
}

// NewEditor creates an editor over session. chains is the set of chain
// letters accepted from selection events; hasLigand controls whether
// rendering plans include the ligand group.
func NewEditor(session *types.DesignSession, chains string, hasLigand bool) *Editor {
	return &Editor{session: session, chains: chains, hasLigand: hasLigand}
}

// Selection returns the currently staged residues.
func (e *Editor) Selection() []types.ResidueKey {
	return e.selection
}

// Apply processes one event and returns the resulting update.
//
// Selection events replace the staged selection, filtered to allowed chains
// and to residues that exist in the structure. State commands apply the
// staged selection and clear it; applying with nothing staged returns
// ErrNoSelection. Invalid input never mutates the session.
func (e *Editor) Apply(ev Event) (Update, error) {
	switch ev := ev.(type) {
	case SelectionEvent:
		e.selection = e.filter(ev.Residues)
		return Update{}, nil

	case StateCommand:
		if len(e.selection) == 0 {
			return Update{}, ErrNoSelection
		}
		if !types.ValidState(ev.State) {
			return Update{}, types.ErrInvalidState
		}
		updated, err := e.session.SetStates(e.selection, ev.State)
		if err != nil {
			return Update{}, err
		}
		e.selection = nil
		return Update{Updated: updated, Plan: e.Plan()}, nil

	case DoneCommand:
		e.selection = nil
		return Update{Done: true}, nil

	default:
		return Update{}, ErrUnknownCmd
	}
}

// Plan returns the rendering plan for the session's current state.
func (e *Editor) Plan() []Highlight {
	return Plan(e.session, e.hasLigand)
}

// filter drops residues on disallowed chains or outside the structure,
// deduplicating while preserving order.
func (e *Editor) filter(keys []types.ResidueKey) []types.ResidueKey {
	var kept []types.ResidueKey
	seen := make(map[types.ResidueKey]bool, len(keys))
	for _, key := range keys {
		if seen[key] || !strings.Contains(e.chains, key.Chain) || !e.session.Has(key) {
			continue
		}
		seen[key] = true
		kept = append(kept, key)
	}
	return kept
}
