package types

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Residue states. Every residue discovered in a loaded structure carries
// exactly one of these values.
const (
	// StateFrozen keeps both backbone geometry and amino-acid type fixed.
	StateFrozen = "BT"
	// StateBackboneOnly keeps backbone geometry fixed but leaves the
	// amino-acid type open to redesign.
	StateBackboneOnly = "B"
	// StateFree leaves the residue fully open to redesign. This is the
	// default for newly discovered residues.
	StateFree = "N"
)

// validStates is the set of recognized residue state values.
var validStates = map[string]bool{
	StateFrozen:       true,
	StateBackboneOnly: true,
	StateFree:         true,
}

// stateDescriptions maps states to the human-readable form shown by the CLI.
var stateDescriptions = map[string]string{
	StateFrozen:       "backbone + type frozen",
	StateBackboneOnly: "backbone only frozen",
	StateFree:         "not frozen",
}

// Residue and state errors.
var (
	ErrInvalidChain   = errors.New("chain must be a single uppercase letter")
	ErrInvalidResidue = errors.New("residue number must be positive")
	ErrInvalidState   = errors.New("invalid residue state")
)

// ValidState reports whether state is one of the recognized state values.
func ValidState(state string) bool {
	return validStates[state]
}

// StateDescription returns the human-readable description of a state, or
// "unknown" for unrecognized values.
func StateDescription(state string) string {
	if d, ok := stateDescriptions[state]; ok {
		return d
	}
	return "unknown"
}

// ResidueKey identifies a single residue in a structure by chain letter and
// residue number.
type ResidueKey struct {
	Chain  string // Single uppercase letter (A-Z).
	Number int    // Positive residue sequence number.
}

// Validate checks that the key has a single uppercase chain letter and a
// positive residue number. Returns a sentinel error on failure.
func (k ResidueKey) Validate() error {
	if len(k.Chain) != 1 || k.Chain[0] < 'A' || k.Chain[0] > 'Z' {
		return ErrInvalidChain
	}
	if k.Number < 1 {
		return ErrInvalidResidue
	}
	return nil
}

// String renders the key in the compact chain-plus-number form, e.g. "A42".
func (k ResidueKey) String() string {
	return k.Chain + strconv.Itoa(k.Number)
}

// Less orders keys by chain, then residue number.
func (k ResidueKey) Less(other ResidueKey) bool {
	if k.Chain != other.Chain {
		return k.Chain < other.Chain
	}
	return k.Number < other.Number
}

// ParseResidueKey parses the compact form produced by String, e.g. "A42".
func ParseResidueKey(s string) (ResidueKey, error) {
	if len(s) < 2 {
		return ResidueKey{}, fmt.Errorf("parse residue %q: %w", s, ErrInvalidChain)
	}
	key := ResidueKey{Chain: s[:1]}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return ResidueKey{}, fmt.Errorf("parse residue %q: %w", s, ErrInvalidResidue)
	}
	key.Number = n
	if err := key.Validate(); err != nil {
		return ResidueKey{}, fmt.Errorf("parse residue %q: %w", s, err)
	}
	return key, nil
}

// SortResidueKeys sorts keys in place by chain, then residue number.
func SortResidueKeys(keys []ResidueKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
