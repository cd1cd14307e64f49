// Import command: load CONTIGS and INPAINT_SEQ from a file into the session.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/contig"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load CONTIGS and INPAINT_SEQ from a saved file or pipeline script",
	Long: `Import scans a file for CONTIGS and INPAINT_SEQ assignments and applies
them to the session. The file may be a previously exported design input or
a pipeline script (.sh, .sbatch) embedding the same variables.

Residues named by the file but absent from the structure are ignored. If
the file does not exist (with or without a ".txt" suffix), the session is
reset to an empty state instead of failing.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := currentRecord(store)
	if err != nil {
		return err
	}
	session, _, err := restoreSession(rec)
	if err != nil {
		return err
	}

	in, err := loadWithTxtFallback(args[0])
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Missing input falls back to the safe default: everything free.
		fmt.Fprintf(os.Stderr, "File not found: %s, starting with empty settings\n", args[0])
		session.Reset()
	case err != nil:
		return err
	default:
		in.Apply(session)
	}

	if err := persistSession(store, rec, session); err != nil {
		return err
	}
	printSettings(session)
	return nil
}

// loadWithTxtFallback tries the path as given, then with a ".txt" suffix.
func loadWithTxtFallback(path string) (contig.DesignInput, error) {
	in, err := contig.Load(path)
	if errors.Is(err, fs.ErrNotExist) && filepath.Ext(path) != ".txt" {
		return contig.Load(path + ".txt")
	}
	return in, err
}
