// Command contigctl prepares RFDiffusion design inputs: it loads a protein
// structure, tracks the freeze state of every residue, and emits the
// CONTIGS and INPAINT_SEQ range strings consumed by the design pipeline.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
