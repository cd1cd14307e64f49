package contig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldworks/contigctl/pkg/types"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.txt")

	in := DesignInput{Contigs: "A2-15/B1-8", InpaintSeq: "A9-12"}
	require.NoError(t, in.Save(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "CONTIGS=\"A2-15/B1-8\"\nINPAINT_SEQ=\"A9-12\"\n", string(content))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadFromScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run_design.sbatch")

	script := `#!/bin/bash
#SBATCH --gres=gpu:1

CONTIGS="A10-40/A55-55"
INPAINT_SEQ="A20-25"

./run_inference.py "contigmap.contigs=[$CONTIGS]"
`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "A10-40/A55-55", in.Contigs)
	assert.Equal(t, "A20-25", in.InpaintSeq)
}

func TestLoadMissingAssignments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("nothing useful here\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrNoDesignInput)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadEmptyStrings(t *testing.T) {
	// Empty assignments are valid: they decode to an empty state.
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.txt")
	require.NoError(t, DesignInput{}.Save(path))

	in, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, in.Contigs)
	assert.Empty(t, in.InpaintSeq)
	assert.Empty(t, Decode(in.Contigs))
}

func TestFromSessionAndApply(t *testing.T) {
	residues := []types.ResidueKey{
		key("A", 1), key("A", 2), key("A", 3), key("A", 4), key("A", 5),
		key("B", 1), key("B", 2),
	}
	s := types.NewDesignSession("id", "t", "t.pdb", residues)

	_, err := s.SetStates([]types.ResidueKey{key("A", 2), key("A", 3)}, types.StateFrozen)
	require.NoError(t, err)
	_, err = s.SetStates([]types.ResidueKey{key("A", 4), key("B", 1)}, types.StateBackboneOnly)
	require.NoError(t, err)

	in := FromSession(s)
	assert.Equal(t, "A2-4/B1-1", in.Contigs)
	assert.Equal(t, "A4-4/B1-1", in.InpaintSeq)

	// Applying the derived input to a fresh session reproduces the states.
	fresh := types.NewDesignSession("id2", "t", "t.pdb", residues)
	in.Apply(fresh)
	assert.Equal(t, types.StateFrozen, fresh.State(key("A", 2)))
	assert.Equal(t, types.StateFrozen, fresh.State(key("A", 3)))
	assert.Equal(t, types.StateBackboneOnly, fresh.State(key("A", 4)))
	assert.Equal(t, types.StateBackboneOnly, fresh.State(key("B", 1)))
	assert.Equal(t, types.StateFree, fresh.State(key("A", 1)))
}

func TestApplyIgnoresUnknownResidues(t *testing.T) {
	s := types.NewDesignSession("id", "t", "t.pdb", []types.ResidueKey{key("A", 1), key("A", 2)})

	// C90-95 is not part of the structure and must be dropped.
	DesignInput{Contigs: "A1-1/C90-95", InpaintSeq: "C90-92"}.Apply(s)

	assert.Equal(t, types.StateFrozen, s.State(key("A", 1)))
	assert.Equal(t, types.StateFree, s.State(key("A", 2)))
	assert.Equal(t, 2, s.Len(), "unknown residues must not be added")
}
