package ui

import (
	"fmt"
	"strings"

	"phonebook/internal/directory"
)

// RenderRecord renders one record with its 1-based display ID, one
// labeled field per line.
func RenderRecord(id int, r directory.Record) string {
	var b strings.Builder
	b.WriteString(idStyle.Render(fmt.Sprintf("ID %d", id)))
	b.WriteByte('\n')
	for _, name := range directory.FieldNames {
		value, _ := r.Field(name)
		b.WriteString(labelStyle.Render(directory.FieldLabel(name) + ":"))
		b.WriteByte(' ')
		b.WriteString(value)
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPage renders a page of records followed by a "Page X/Y" footer.
// IDs count from firstID, the 1-based position of the first record on
// the page.
func RenderPage(records []directory.Record, firstID, page, totalPages int) string {
	var b strings.Builder
	for i, r := range records {
		b.WriteString(RenderRecord(firstID+i, r))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("Page %d/%d", page, totalPages)))
	b.WriteByte('\n')
	return b.String()
}
