package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"phonebook/cmd/phonebook/ui"
	"phonebook/internal/directory"
)

var (
	searchPage    int
	searchPerPage int
)

// searchCmd searches the directory and displays the matches.
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search records by query",
	Long: `Searches the directory. A query of the form field=value (for
example organization=ГазПром) matches records whose field equals the
value, ignoring case. Any other query matches records containing it in
any field. Matches are displayed with the same pagination as display;
the record numbers are positions within the result set.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchPage, "page", "p", 1, "Page number to display")
	searchCmd.Flags().IntVarP(&searchPerPage, "per-page", "r", 0, "Records per page (default from config)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	dir, closeStore, err := openDirectory()
	if err != nil {
		return err
	}
	defer closeStore()

	results, err := dir.Search(args[0])
	if err != nil {
		if errors.Is(err, directory.ErrUnknownField) {
			field, _, _ := strings.Cut(args[0], "=")
			cmd.Println(ui.Error(fmt.Sprintf("Field '%s' does not exist.", field)))
			cmd.Println("No results found.")
			return nil
		}
		return fmt.Errorf("search: %w", err)
	}
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	perPage := searchPerPage
	if perPage < 1 {
		perPage = cfg.Display.PerPage
	}
	pageRecords, totalPages := directory.Paginate(results, perPage, searchPage)
	firstID := (searchPage-1)*perPage + 1
	cmd.Print(ui.RenderPage(pageRecords, firstID, searchPage, totalPages))
	return nil
}
