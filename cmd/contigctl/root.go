// Root command and global flags for the contigctl CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/foldworks/contigctl/internal/paths"
)

// Version of the contigctl tool.
const version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagSession   string
	flagJSON      bool
)

// Config values loaded by PersistentPreRunE so all subcommands can use them.
var (
	configDataDir string
	configChains  string
	configBackend string
)

var rootCmd = &cobra.Command{
	Use:   "contigctl",
	Short: "Contigctl edits residue freeze states and emits RFDiffusion inputs",
	Long: `Contigctl prepares RFDiffusion design inputs for a protein structure.

Load a PDB file to start a session, mark residues as frozen (backbone and
type), backbone-only frozen, or free, then export the CONTIGS and
INPAINT_SEQ range strings the design pipeline consumes.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configChains = cfg.GetString(cfgKeyChains)
		configBackend = cfg.GetString(cfgKeyBackend)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.contigctl-db)")
	rootCmd.PersistentFlags().StringVar(&flagSession, "session", "", "session ID (default: most recently updated session)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(editCmd)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > CONTIGCTL_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > CONTIGCTL_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
