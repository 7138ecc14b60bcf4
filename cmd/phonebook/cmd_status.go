package main

import (
	"github.com/spf13/cobra"

	"phonebook/internal/config"
)

// statusCmd reports the configured backend and record count.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend and record count",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, closeStore, err := openDirectory()
	if err != nil {
		return err
	}
	defer closeStore()

	cmd.Printf("Backend: %s\n", cfg.Storage.Backend)
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		cmd.Printf("Database: %s\n", cfg.Storage.Database)
	default:
		cmd.Printf("File: %s\n", cfg.Storage.File)
	}
	cmd.Printf("Records: %d\n", dir.Len())
	return nil
}
