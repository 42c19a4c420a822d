// Package export renders the expense list as downloadable documents.
package export

import (
	"strings"

	"spendlog/internal/core"
)

// CSV renders the list with the fixed header row. Categories appear as
// their display labels; titles and notes are always quoted. The shape is a
// compatibility contract with the original export, so no csv writer is used:
// it would drop the unconditional quoting.
func CSV(list []core.Expense) string {
	var b strings.Builder
	b.WriteString("Title,Amount,Category,Date,Payment,Notes\n")
	for i, e := range list {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(`"` + e.Title + `",`)
		b.WriteString(core.FormatAmount(e.Amount) + ",")
		b.WriteString(core.CategoryByID(e.Category).Label + ",")
		b.WriteString(e.Date.String() + ",")
		b.WriteString(string(e.Payment) + ",")
		b.WriteString(`"` + e.Notes + `"`)
	}
	return b.String()
}
