package pdb

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldworks/contigctl/pkg/types"
)

// fixture is a minimal but column-accurate PDB fragment: two chain A
// residues (each with two atoms), one chain B residue, a water and a
// non-water HETATM, plus records that must be skipped.
const fixture = `HEADER    TEST STRUCTURE
ATOM      1  N   ALA A   2      11.104  13.207   2.042  1.00  0.00           N
ATOM      2  CA  ALA A   2      12.560  13.329   2.200  1.00  0.00           C
ATOM      3  N   GLY A   3      13.104  14.207   2.042  1.00  0.00           N
ATOM      4  CA  GLY A   3      14.560  14.329   2.200  1.00  0.00           C
ATOM      5  CA  SER B  10      15.560  15.329   2.200  1.00  0.00           C
ATOM      6  C1  UNK A   4      16.560  16.329   2.200  1.00  0.00           C
HETATM    7  O   HOH A 101      17.560  17.329   2.200  1.00  0.00           O
HETATM    8  C1  LIG A 201      18.560  18.329   2.200  1.00  0.00           C
END
`

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pdb")
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	s, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, []types.ResidueKey{
		{Chain: "A", Number: 2},
		{Chain: "A", Number: 3},
		{Chain: "B", Number: 10},
	}, s.Residues, "duplicate atoms collapse to one residue; UNK is skipped")
	assert.True(t, s.HasLigand, "non-water HETATM marks a ligand")
}

func TestReadGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pdb.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(fixture))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	s, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, s.Residues, 3)
}

func TestReadWaterOnly(t *testing.T) {
	content := `ATOM      1  CA  ALA A   1      11.104  13.207   2.042  1.00  0.00           C
HETATM    2  O   HOH A 101      17.560  17.329   2.200  1.00  0.00           O
`
	path := filepath.Join(t.TempDir(), "water.pdb")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Read(path)
	require.NoError(t, err)
	assert.False(t, s.HasLigand, "water alone is not a ligand")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.pdb"))
	assert.Error(t, err)
}
