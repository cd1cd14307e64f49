package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() *DesignSession {
	return NewDesignSession("id", "test", "test.pdb", []ResidueKey{
		{Chain: "A", Number: 1},
		{Chain: "A", Number: 2},
		{Chain: "A", Number: 3},
		{Chain: "B", Number: 1},
	})
}

func TestNewDesignSessionDefaultsToFree(t *testing.T) {
	s := testSession()
	assert.Equal(t, 4, s.Len())
	for _, key := range s.Residues() {
		assert.Equal(t, StateFree, s.State(key))
	}
}

func TestSetStates(t *testing.T) {
	s := testSession()

	updated, err := s.SetStates([]ResidueKey{
		{Chain: "A", Number: 1},
		{Chain: "A", Number: 2},
		{Chain: "C", Number: 7}, // outside the structure
	}, StateFrozen)
	require.NoError(t, err)
	assert.Equal(t, 2, updated, "unknown residues are skipped, not counted")

	assert.Equal(t, StateFrozen, s.State(ResidueKey{Chain: "A", Number: 1}))
	assert.False(t, s.Has(ResidueKey{Chain: "C", Number: 7}), "unknown residues must not be added")
}

func TestSetStatesInvalidState(t *testing.T) {
	s := testSession()
	_, err := s.SetStates([]ResidueKey{{Chain: "A", Number: 1}}, "frozen")
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, StateFree, s.State(ResidueKey{Chain: "A", Number: 1}))
}

func TestStateOfUnknownResidueIsFree(t *testing.T) {
	s := testSession()
	assert.Equal(t, StateFree, s.State(ResidueKey{Chain: "Q", Number: 99}))
}

func TestContigsAndInpaintSeq(t *testing.T) {
	s := testSession()
	_, err := s.SetStates([]ResidueKey{{Chain: "A", Number: 2}}, StateFrozen)
	require.NoError(t, err)
	_, err = s.SetStates([]ResidueKey{{Chain: "A", Number: 3}, {Chain: "B", Number: 1}}, StateBackboneOnly)
	require.NoError(t, err)

	assert.Equal(t, []ResidueKey{
		{Chain: "A", Number: 2},
		{Chain: "A", Number: 3},
		{Chain: "B", Number: 1},
	}, s.Contigs())

	inpaint := s.InpaintSeq()
	assert.Equal(t, []ResidueKey{
		{Chain: "A", Number: 3},
		{Chain: "B", Number: 1},
	}, inpaint)

	// INPAINT_SEQ is always a subset of CONTIGS.
	contigSet := make(map[ResidueKey]bool)
	for _, key := range s.Contigs() {
		contigSet[key] = true
	}
	for _, key := range inpaint {
		assert.True(t, contigSet[key])
	}
}

func TestApplyDesignInput(t *testing.T) {
	s := testSession()
	_, err := s.SetStates([]ResidueKey{{Chain: "B", Number: 1}}, StateFrozen)
	require.NoError(t, err)

	contigs := map[ResidueKey]bool{
		{Chain: "A", Number: 1}: true,
		{Chain: "A", Number: 2}: true,
		{Chain: "C", Number: 9}: true, // outside the structure
	}
	inpaint := map[ResidueKey]bool{
		{Chain: "A", Number: 2}: true,
	}
	s.ApplyDesignInput(contigs, inpaint)

	assert.Equal(t, StateFrozen, s.State(ResidueKey{Chain: "A", Number: 1}))
	assert.Equal(t, StateBackboneOnly, s.State(ResidueKey{Chain: "A", Number: 2}))
	assert.Equal(t, StateFree, s.State(ResidueKey{Chain: "B", Number: 1}), "apply resets previous states")
	assert.Equal(t, 4, s.Len())
}

func TestReset(t *testing.T) {
	s := testSession()
	_, err := s.SetStates(s.Residues(), StateFrozen)
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, map[string]int{
		StateFrozen:       0,
		StateBackboneOnly: 0,
		StateFree:         4,
	}, s.StateCounts())
}
