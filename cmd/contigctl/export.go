// Export command: write the two-line design-input file.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/contig"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the design input to a file",
	Long: `Export writes the session's CONTIGS and INPAINT_SEQ strings to a file in
the two-line assignment format the design pipeline sources:

  CONTIGS="A2-15/B1-8"
  INPAINT_SEQ="A9-12"

The ".txt" extension is added when the output name has no extension.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default: <session-name>.txt)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	out := exportOut
	if out == "" {
		out = rec.Name + ".txt"
	} else if filepath.Ext(out) == "" {
		out += ".txt"
	}

	if err := contig.FromSession(session).Save(out); err != nil {
		return err
	}
	fmt.Println("Settings saved to", out)
	return nil
}
