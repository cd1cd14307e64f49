package contig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/foldworks/contigctl/pkg/types"
)

// ErrNoDesignInput is returned by Load when a file carries no CONTIGS or
// INPAINT_SEQ assignment.
var ErrNoDesignInput = errors.New("no CONTIGS/INPAINT_SEQ found")

// Assignment patterns accepted by Load. The quoted form matches both the
// files Save writes and pipeline scripts (.sh, .sbatch) that embed the same
// variables.
var (
	contigsRE = regexp.MustCompile(`CONTIGS="([^"]*)"`)
	inpaintRE = regexp.MustCompile(`INPAINT_SEQ="([^"]*)"`)
)

// DesignInput is the pair of range strings consumed by the design pipeline.
// InpaintSeq names a subset of the residues named by Contigs.
type DesignInput struct {
	Contigs    string `json:"contigs"`
	InpaintSeq string `json:"inpaint_seq"`
}

// FromSession derives the design input from a session's current states.
func FromSession(s *types.DesignSession) DesignInput {
	return DesignInput{
		Contigs:    Encode(s.Contigs()),
		InpaintSeq: Encode(s.InpaintSeq()),
	}
}

// Apply decodes both strings and applies them to the session: contig
// residues freeze backbone and type, contig residues also named by
// INPAINT_SEQ freeze backbone only. Residues outside the session's
// structure are ignored.
func (d DesignInput) Apply(s *types.DesignSession) {
	s.ApplyDesignInput(Decode(d.Contigs), Decode(d.InpaintSeq))
}

// Save writes the design input to path as the two-line assignment format:
//
//	CONTIGS="A2-15/B1-8"
//	INPAINT_SEQ="A9-12"
//
// Parent directories are created as needed.
func (d DesignInput) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	content := fmt.Sprintf("CONTIGS=%q\nINPAINT_SEQ=%q\n", d.Contigs, d.InpaintSeq)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write design input: %w", err)
	}
	return nil
}

// Load scans path for CONTIGS and INPAINT_SEQ assignments. The file may be a
// previously saved design input or a pipeline script embedding the same
// variables. Returns ErrNoDesignInput when either assignment is missing; a
// missing file surfaces as the underlying I/O error so the caller can fall
// back to an empty state.
func Load(path string) (DesignInput, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return DesignInput{}, fmt.Errorf("read design input: %w", err)
	}

	contigs := contigsRE.FindSubmatch(content)
	inpaint := inpaintRE.FindSubmatch(content)
	if contigs == nil || inpaint == nil {
		return DesignInput{}, fmt.Errorf("%s: %w", path, ErrNoDesignInput)
	}

	return DesignInput{
		Contigs:    string(contigs[1]),
		InpaintSeq: string(inpaint[1]),
	}, nil
}
