package main

import (
	"github.com/spf13/cobra"

	"phonebook/cmd/phonebook/ui"
	"phonebook/internal/directory"
)

var (
	displayPage    int
	displayPerPage int
)

// displayCmd lists records page by page.
var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Display all records",
	Long: `Displays the directory one page at a time. Records are numbered by
their position in the directory; the same numbers are the indexes the
edit command takes.`,
	RunE: runDisplay,
}

func init() {
	displayCmd.Flags().IntVarP(&displayPage, "page", "p", 1, "Page number to display")
	displayCmd.Flags().IntVarP(&displayPerPage, "per-page", "r", 0, "Records per page (default from config)")
}

func runDisplay(cmd *cobra.Command, args []string) error {
	dir, closeStore, err := openDirectory()
	if err != nil {
		return err
	}
	defer closeStore()

	perPage := displayPerPage
	if perPage < 1 {
		perPage = cfg.Display.PerPage
	}
	pageRecords, totalPages := directory.Paginate(dir.List(), perPage, displayPage)
	firstID := (displayPage-1)*perPage + 1
	cmd.Print(ui.RenderPage(pageRecords, firstID, displayPage, totalPages))
	return nil
}
