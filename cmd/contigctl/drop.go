// Drop command: delete a stored design session.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/pkg/types"
)

var dropCmd = &cobra.Command{
	Use:   "drop <session-id>",
	Short: "Delete a stored session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(args[0]); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return fmt.Errorf("session %s not found", args[0])
			}
			return err
		}
		fmt.Println("Deleted session", args[0])
		return nil
	},
}
