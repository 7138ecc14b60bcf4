package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phonebook/internal/config"
	"phonebook/internal/directory"
	"phonebook/internal/logging"
	"phonebook/internal/store"
)

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "phonebook - command line phone directory",
	Long: `phonebook manages a contact directory from the command line.

Records hold a name, an organization and two phone numbers, and are kept
in a JSON file (the default) or a SQLite database. Use the display, add,
edit and search subcommands to work with them.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.File)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "phonebook.yaml", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(displayCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openStore builds the persistence backend selected by the config.
func openStore() (directory.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		return store.NewSQLiteStore(cfg.Storage.Database, logger)
	default:
		return store.NewJSONStore(cfg.Storage.File, logger), nil
	}
}

// openDirectory loads the directory from the configured backend. The
// returned cleanup closes the backend.
func openDirectory() (*directory.Directory, func(), error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	dir, err := directory.New(st, logger)
	if err != nil {
		st.Close()
		return nil, nil, err
	}
	return dir, func() { st.Close() }, nil
}
