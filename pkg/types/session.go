package types

import (
	"errors"
	"time"
)

// Session errors.
var (
	ErrNotFound    = errors.New("session not found")
	ErrInvalidName = errors.New("invalid session name")
)

// DesignSession tracks the editing state for one loaded structure: which
// residues exist and the freeze state of each. Every residue discovered in
// the structure has exactly one state; residues outside the structure are
// never added by state changes.
type DesignSession struct {
	SessionID     string    // UUID, generated on creation.
	Name          string    // Human-readable name (defaults to the structure file name).
	StructurePath string    // Path of the loaded structure file.
	CreatedAt     time.Time // Timestamp of creation.
	UpdatedAt     time.Time // Timestamp of last modification.

	states map[ResidueKey]string
}

// NewDesignSession creates a session whose residue set is exactly residues,
// each starting in the free state.
func NewDesignSession(id, name, structurePath string, residues []ResidueKey) *DesignSession {
	s := &DesignSession{
		SessionID:     id,
		Name:          name,
		StructurePath: structurePath,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
		states:        make(map[ResidueKey]string, len(residues)),
	}
	for _, key := range residues {
		s.states[key] = StateFree
	}
	return s
}

// Len returns the number of residues in the session.
func (s *DesignSession) Len() int {
	return len(s.states)
}

// Has reports whether the residue belongs to the loaded structure.
func (s *DesignSession) Has(key ResidueKey) bool {
	_, ok := s.states[key]
	return ok
}

// State returns the state of a residue, or StateFree for residues outside
// the structure (the safe default; such residues are never stored).
func (s *DesignSession) State(key ResidueKey) string {
	if state, ok := s.states[key]; ok {
		return state
	}
	return StateFree
}

// SetStates sets the state of every given residue that belongs to the
// structure. Residues outside the structure are ignored. Returns the number
// of residues updated, or ErrInvalidState if state is not recognized.
func (s *DesignSession) SetStates(keys []ResidueKey, state string) (int, error) {
	if !ValidState(state) {
		return 0, ErrInvalidState
	}
	updated := 0
	for _, key := range keys {
		if _, ok := s.states[key]; !ok {
			continue
		}
		s.states[key] = state
		updated++
	}
	if updated > 0 {
		s.UpdatedAt = time.Now()
	}
	return updated, nil
}

// Reset returns every residue to the free state.
func (s *DesignSession) Reset() {
	for key := range s.states {
		s.states[key] = StateFree
	}
	s.UpdatedAt = time.Now()
}

// Residues returns all residues of the structure, sorted by chain and number.
func (s *DesignSession) Residues() []ResidueKey {
	keys := make([]ResidueKey, 0, len(s.states))
	for key := range s.states {
		keys = append(keys, key)
	}
	SortResidueKeys(keys)
	return keys
}

// Contigs returns the sorted residues whose backbone is held fixed, i.e.
// those in state BT or B.
func (s *DesignSession) Contigs() []ResidueKey {
	return s.WithStates(StateFrozen, StateBackboneOnly)
}

// InpaintSeq returns the sorted residues whose backbone is fixed but whose
// sequence identity may be redesigned, i.e. those in state B. This is always
// a subset of Contigs.
func (s *DesignSession) InpaintSeq() []ResidueKey {
	return s.WithStates(StateBackboneOnly)
}

// WithStates returns the sorted residues whose state is one of wanted.
func (s *DesignSession) WithStates(wanted ...string) []ResidueKey {
	var keys []ResidueKey
	for key, state := range s.states {
		for _, w := range wanted {
			if state == w {
				keys = append(keys, key)
				break
			}
		}
	}
	SortResidueKeys(keys)
	return keys
}

// ApplyDesignInput resets all residues to free and then applies the given
// contig and inpaint sets: residues in contigs become BT, residues in both
// contigs and inpaint become B. Residues outside the structure are ignored.
func (s *DesignSession) ApplyDesignInput(contigs, inpaint map[ResidueKey]bool) {
	for key := range s.states {
		s.states[key] = StateFree
	}
	for key := range contigs {
		if _, ok := s.states[key]; !ok {
			continue
		}
		if inpaint[key] {
			s.states[key] = StateBackboneOnly
		} else {
			s.states[key] = StateFrozen
		}
	}
	s.UpdatedAt = time.Now()
}

// StateCounts returns the number of residues in each state, keyed by the
// state constants.
func (s *DesignSession) StateCounts() map[string]int {
	counts := map[string]int{
		StateFrozen:       0,
		StateBackboneOnly: 0,
		StateFree:         0,
	}
	for _, state := range s.states {
		counts[state]++
	}
	return counts
}
