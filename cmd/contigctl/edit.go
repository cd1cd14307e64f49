// Edit command: interactive editing driven by a line-oriented event stream.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/contig"
	"github.com/foldworks/contigctl/internal/viewer"
	"github.com/foldworks/contigctl/pkg/types"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit residue states interactively",
	Long: `Edit reads editing events from standard input, one per line, and applies
them to the session. This is the stream a viewer integration forwards; it
can equally be typed by hand or piped from a script.

Commands:
  select <range>   stage the residues named by a range string (e.g. A10-20)
  bt | b | n       set the staged selection to the given state
  show             print the current settings
  done | q         finish editing and save the session`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := currentRecord(store)
	if err != nil {
		return err
	}
	session, structure, err := restoreSession(rec)
	if err != nil {
		return err
	}

	chains := configChains
	if chains == "" {
		chains = types.DefaultAllowedChains
	}
	editor := viewer.NewEditor(session, chains, structure.HasLigand)

	fmt.Printf("Editing session %s (%s), %d residues\n", rec.SessionID, rec.Name, session.Len())
	fmt.Println("Commands: select <range>, bt, b, n, show, done")

	if err := editLoop(editor, session, cmd.InOrStdin(), os.Stderr); err != nil {
		return err
	}

	if err := persistSession(store, rec, session); err != nil {
		return err
	}
	printSettings(session)
	return nil
}

// editLoop consumes events line by line until "done" or end of input.
// Malformed lines are reported and skipped; they never abort the loop.
func editLoop(editor *viewer.Editor, session *types.DesignSession, in io.Reader, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "show") {
			printSettings(session)
			continue
		}

		event, err := parseEvent(line)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}

		update, err := editor.Apply(event)
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}

		switch {
		case update.Done:
			return nil
		case update.Updated > 0:
			fmt.Printf("Updated %d residue(s)\n", update.Updated)
			printPlan(update.Plan)
		case isSelection(event):
			fmt.Printf("Selected %d residue(s)\n", len(editor.Selection()))
		}
	}
	return scanner.Err()
}

// parseEvent maps one input line to a viewer event.
func parseEvent(line string) (viewer.Event, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "select":
		if len(fields) < 2 {
			return nil, fmt.Errorf("select needs a range string, e.g. \"select A10-20\"")
		}
		return viewer.SelectionEvent{Residues: contig.DecodeSorted(fields[1])}, nil
	case "bt", "b", "n":
		state, err := normalizeState(fields[0])
		if err != nil {
			return nil, err
		}
		return viewer.StateCommand{State: state}, nil
	case "done", "q":
		return viewer.DoneCommand{}, nil
	default:
		return nil, fmt.Errorf("unknown command %q (use select, bt, b, n, show, done)", fields[0])
	}
}

// isSelection reports whether the event was a selection.
func isSelection(ev viewer.Event) bool {
	_, ok := ev.(viewer.SelectionEvent)
	return ok
}

// printPlan summarizes the rendering hints produced by a state change.
func printPlan(plan []viewer.Highlight) {
	for _, h := range plan {
		if len(h.Residues) == 0 {
			fmt.Printf("  %s: %s %s\n", h.Group, h.Color, h.Repr)
			continue
		}
		fmt.Printf("  %s: %d residue(s) as %s %s\n", h.Group, len(h.Residues), h.Color, h.Repr)
	}
}
