package main

import (
	"github.com/spf13/cobra"

	"phonebook/cmd/phonebook/ui"
	"phonebook/internal/directory"
)

// addCmd adds a record, prompting for each field.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new record",
	Long: `Prompts for each field of a new record and appends it to the
directory. Name fields accept Latin and Cyrillic letters, spaces and a
single hyphen; phone fields accept digits with optional +, parentheses
and separators.`,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir, closeStore, err := openDirectory()
	if err != nil {
		return err
	}
	defer closeStore()

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	var rec directory.Record
	for _, name := range directory.FieldNames {
		value, err := p.ask(directory.FieldLabel(name) + ": ")
		if err != nil {
			return err
		}
		rec.SetField(name, value)
	}

	if err := dir.Add(rec); err != nil {
		// The styled message is the report; keep cobra from printing
		// the error a second time.
		cmd.Println(ui.Error("Failed to create record: " + err.Error()))
		cmd.SilenceErrors = true
		return err
	}
	cmd.Println(ui.Success("Entry added successfully."))
	return nil
}
