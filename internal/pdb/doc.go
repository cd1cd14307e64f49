// Package pdb discovers the protein residues of a PDB structure file.
// Only the ATOM and HETATM record types are inspected; the goal is the set
// of (chain, residue number) keys available for design, not full structural
// detail.
package pdb
