// Shared helpers for contigctl CLI commands.
package main

import (
	"fmt"
	"time"

	"github.com/foldworks/contigctl/internal/contig"
	"github.com/foldworks/contigctl/internal/pdb"
	"github.com/foldworks/contigctl/internal/sqlite"
	"github.com/foldworks/contigctl/pkg/types"
)

// openStore resolves the data directory and opens the session store. The
// caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:       configBackend,
		DataDir:       dataDir,
		AllowedChains: configChains,
	}
	if cfg.Backend == "" {
		cfg.Backend = types.BackendSQLite
	}

	store, err := sqlite.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return store, nil
}

// currentRecord returns the session addressed by --session, or the most
// recently updated session when the flag is empty.
func currentRecord(store *sqlite.Store) (sqlite.SessionRecord, error) {
	if flagSession != "" {
		rec, err := store.Get(flagSession)
		if err != nil {
			return sqlite.SessionRecord{}, fmt.Errorf("session %s: %w", flagSession, err)
		}
		return rec, nil
	}

	rec, err := store.Latest()
	if err != nil {
		return sqlite.SessionRecord{}, fmt.Errorf("no session loaded (run \"contigctl load\" first): %w", err)
	}
	return rec, nil
}

// restoreSession rebuilds the in-memory session for a stored record: the
// structure file is re-read to recover the residue set, then the stored
// range strings are applied. Residues named by the strings but absent from
// the structure are dropped.
func restoreSession(rec sqlite.SessionRecord) (*types.DesignSession, *pdb.Structure, error) {
	structure, err := pdb.Read(rec.StructurePath)
	if err != nil {
		return nil, nil, fmt.Errorf("restore session %s: %w", rec.SessionID, err)
	}

	session := types.NewDesignSession(rec.SessionID, rec.Name, rec.StructurePath, structure.Residues)
	session.CreatedAt = rec.CreatedAt
	contig.DesignInput{Contigs: rec.Contigs, InpaintSeq: rec.InpaintSeq}.Apply(session)
	return session, structure, nil
}

// persistSession writes the session's current state back to the store in
// range-string form.
func persistSession(store *sqlite.Store, rec sqlite.SessionRecord, session *types.DesignSession) error {
	in := contig.FromSession(session)
	rec.Contigs = in.Contigs
	rec.InpaintSeq = in.InpaintSeq
	rec.UpdatedAt = time.Now()
	if err := store.Put(rec); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// printSettings prints the current design input and per-state counts in the
// format users paste into pipeline scripts.
func printSettings(session *types.DesignSession) {
	in := contig.FromSession(session)
	counts := session.StateCounts()

	fmt.Printf("CONTIGS=%q\n", in.Contigs)
	fmt.Printf("INPAINT_SEQ=%q\n", in.InpaintSeq)
	fmt.Println()
	fmt.Println("Summary:")
	fmt.Printf("  Fully frozen (BT): %d residues\n", counts[types.StateFrozen])
	fmt.Printf("  Backbone only (B): %d residues\n", counts[types.StateBackboneOnly])
	fmt.Printf("  Not frozen (N):    %d residues\n", counts[types.StateFree])
}

// normalizeState maps user-entered state spellings (bt, b, n, any case) to
// the state constants. Returns ErrInvalidState for anything else.
func normalizeState(s string) (string, error) {
	switch s {
	case "BT", "bt", "Bt", "bT":
		return types.StateFrozen, nil
	case "B", "b":
		return types.StateBackboneOnly, nil
	case "N", "n":
		return types.StateFree, nil
	default:
		return "", fmt.Errorf("state %q: %w", s, types.ErrInvalidState)
	}
}
