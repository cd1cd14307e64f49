// Load command: read a structure file and start a design session.
package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/pdb"
	"github.com/foldworks/contigctl/internal/sqlite"
	"github.com/foldworks/contigctl/pkg/types"
)

var loadName string

var loadCmd = &cobra.Command{
	Use:   "load <structure.pdb>",
	Short: "Load a PDB structure and create a new session",
	Long: `Load reads a PDB file (optionally gzip-compressed), discovers its protein
residues, and creates a new session with every residue in the free state.

Example:
  contigctl load 4hhb.pdb
  contigctl load target.pdb.gz --name binder-target`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&loadName, "name", "", "session name (default: structure file name)")
}

func runLoad(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	structure, err := pdb.Read(path)
	if err != nil {
		return fmt.Errorf("load structure: %w", err)
	}
	if len(structure.Residues) == 0 {
		return fmt.Errorf("load structure: no protein residues found in %s", path)
	}

	name := loadName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	session := types.NewDesignSession(uuid.NewString(), name, path, structure.Residues)
	rec := sqlite.SessionRecord{
		SessionID:     session.SessionID,
		Name:          name,
		StructurePath: path,
		CreatedAt:     session.CreatedAt,
	}
	if err := persistSession(store, rec, session); err != nil {
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(map[string]any{
			"session_id": rec.SessionID,
			"name":       rec.Name,
			"structure":  rec.StructurePath,
			"residues":   session.Len(),
			"has_ligand": structure.HasLigand,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Loaded %s\n", path)
	fmt.Printf("Found %d protein residues\n", session.Len())
	if structure.HasLigand {
		fmt.Println("Ligand detected (shown as purple sticks by the viewer)")
	}
	fmt.Printf("Session: %s (%s)\n", rec.SessionID, rec.Name)
	return nil
}
