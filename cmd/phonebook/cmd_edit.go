package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"phonebook/cmd/phonebook/ui"
	"phonebook/internal/directory"
)

// editCmd edits one field of a record selected by its display index.
var editCmd = &cobra.Command{
	Use:   "edit <index>",
	Short: "Edit a record by index",
	Long: `Edits a record selected by the 1-based index the display command
shows. Prints the current values, then prompts for the number of the
field to change and its new value.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}

	dir, closeStore, err := openDirectory()
	if err != nil {
		return err
	}
	defer closeStore()

	if index < 1 || index > dir.Len() {
		cmd.Println(ui.Error("Invalid index."))
		cmd.SilenceErrors = true
		return directory.ErrIndexOutOfRange
	}
	rec := dir.List()[index-1]

	cmd.Println("Current values:")
	for _, name := range directory.FieldNames {
		value, _ := rec.Field(name)
		cmd.Printf("%s: %s\n", directory.FieldLabel(name), value)
	}
	cmd.Println("Choose a field to edit:")
	for i, name := range directory.FieldNames {
		cmd.Printf("%d. %s\n", i+1, directory.FieldLabel(name))
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	answer, err := p.ask("Enter the number of the field to edit: ")
	if err != nil {
		return err
	}
	fieldNum, err := strconv.Atoi(answer)
	if err != nil || fieldNum < 1 || fieldNum > len(directory.FieldNames) {
		cmd.Println(ui.Error("Invalid input. Please enter a valid field number."))
		cmd.SilenceErrors = true
		return fmt.Errorf("invalid field number %q", answer)
	}
	field := directory.FieldNames[fieldNum-1]

	value, err := p.ask(fmt.Sprintf("Enter the new value for %s: ", directory.FieldLabel(field)))
	if err != nil {
		return err
	}

	if err := dir.Edit(index-1, field, value); err != nil {
		cmd.Println(ui.Error("Failed to edit record: " + err.Error()))
		cmd.SilenceErrors = true
		return err
	}
	cmd.Println(ui.Success("Entry edited successfully."))
	return nil
}
