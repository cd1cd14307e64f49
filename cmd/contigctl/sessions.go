// Sessions command: list stored design sessions.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored design sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List()
		if err != nil {
			return err
		}

		if flagJSON {
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if len(records) == 0 {
			fmt.Println("No sessions stored")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("%s  %-20s  %s  (updated %s)\n",
				rec.SessionID, rec.Name, rec.StructurePath,
				rec.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}
