package pdb

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/foldworks/contigctl/pkg/types"
)

// aminoAcids is the set of three-letter codes counted as protein residues.
// Non-standard residues in ATOM records are skipped rather than rejected.
var aminoAcids = map[string]bool{
	"ALA": true, "ARG": true, "ASN": true, "ASP": true, "CYS": true,
	"GLU": true, "GLN": true, "GLY": true, "HIS": true, "ILE": true,
	"LEU": true, "LYS": true, "MET": true, "PHE": true, "PRO": true,
	"SER": true, "THR": true, "TRP": true, "TYR": true, "VAL": true,
	"SEC": true, "PYL": true,
}

// Structure is the residue-level view of a PDB file.
type Structure struct {
	Path      string
	Residues  []types.ResidueKey // Deduplicated, sorted by chain and number.
	HasLigand bool               // True if a non-water HETATM record was seen.
}

// Read parses the PDB file at path and returns its residue-level structure.
// Files ending in ".gz" are decompressed transparently. ATOM records with a
// non-amino-acid residue name, a chain identifier outside A-Z, or an
// unparsable residue number are skipped.
func Read(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open structure: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open structure: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	s := &Structure{Path: path}
	seen := make(map[types.ResidueKey]bool)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 27 {
			continue
		}
		switch strings.TrimSpace(line[0:6]) {
		case "ATOM":
			if key, ok := parseResidue(line); ok && !seen[key] {
				seen[key] = true
				s.Residues = append(s.Residues, key)
			}
		case "HETATM":
			// Water is not a ligand.
			if strings.TrimSpace(line[17:20]) != "HOH" {
				s.HasLigand = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read structure: %w", err)
	}

	types.SortResidueKeys(s.Residues)
	return s, nil
}

// parseResidue extracts the residue key from one ATOM record. PDB fixed
// columns: residue name in 18-20, chain identifier in 22, residue sequence
// number in 23-26 (one-based column numbering).
func parseResidue(line string) (types.ResidueKey, bool) {
	if !aminoAcids[strings.TrimSpace(line[17:20])] {
		return types.ResidueKey{}, false
	}

	chain := line[21]
	if chain < 'A' || chain > 'Z' {
		return types.ResidueKey{}, false
	}

	num, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil || num < 1 {
		return types.ResidueKey{}, false
	}

	return types.ResidueKey{Chain: string(chain), Number: num}, true
}
