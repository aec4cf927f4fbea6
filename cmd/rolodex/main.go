// Package main provides the rolodex CLI: a console record tracker
// driven by an activity-stack REPL over a pluggable record store.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/activity"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// backendOverride is set by the --backend flag and wins over the
	// configured backend.
	backendOverride string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rolodex",
	Short: "Rolodex is a console record tracker",
	Long: `Rolodex tracks free-form personal records (name, email, age) in an
in-memory store for the length of one session. Running it starts an
interactive menu for adding, listing, and querying records; the session
ends when Exit is chosen.`,
	SilenceUsage: true,
	RunE:         runREPL,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: .rolodex.yaml in . or $HOME)")
	rootCmd.Flags().StringVar(&backendOverride, "backend", "", "store backend: memory or sqlite (default: memory)")

	rootCmd.AddCommand(versionCmd)
}

// runREPL wires the store and the root menu, then blocks in the
// activity run loop until Exit empties the stack.
func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if backendOverride != "" {
		cfg.Backend = backendOverride
	}

	store, err := attachStore(cfg)
	if err != nil {
		return fmt.Errorf("attach store: %w", err)
	}
	defer store.Detach()

	out := cmd.OutOrStdout()
	manager := activity.NewManager(cmd.InOrStdin(), out)
	return manager.Run(activity.RootMenu(manager, out, store))
}
