// Package contig implements the range-string codec used by RFDiffusion
// design inputs: residue sets are rendered as chain-prefixed inclusive
// ranges joined with "/" (e.g. "A2-15/A30-30/B1-8"), and parsed back into
// residue key sets. It also reads and writes the two-line design-input file
// carrying the CONTIGS and INPAINT_SEQ strings.
package contig
