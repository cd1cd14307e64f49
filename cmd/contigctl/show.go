// Show command: print the current design input and state summary.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/contig"
	"github.com/foldworks/contigctl/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current CONTIGS and INPAINT_SEQ strings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if flagJSON {
			in := contig.FromSession(session)
			counts := session.StateCounts()
			out, err := json.MarshalIndent(map[string]any{
				"session_id":  rec.SessionID,
				"contigs":     in.Contigs,
				"inpaint_seq": in.InpaintSeq,
				"counts": map[string]int{
					"frozen_bt": counts[types.StateFrozen],
					"frozen_b":  counts[types.StateBackboneOnly],
					"free":      counts[types.StateFree],
				},
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Session %s (%s)\n\n", rec.SessionID, rec.Name)
		printSettings(session)
		return nil
	},
}
