package export

import (
	"strings"

	"github.com/chainfolio/taxport/internal/octav"
)

// escapeCell applies the RFC 4180 quoting subset: cells containing a comma,
// double quote or newline are wrapped in double quotes with embedded quotes
// doubled; everything else is emitted verbatim.
func escapeCell(value string) string {
	if !strings.ContainsAny(value, ",\"\n") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// Build serializes the header row plus the mapped rows of every transaction.
// With expandMultiAsset false only the first row of each transaction's group
// is kept, so the output always has exactly one line per transaction.
func Build(exporter Exporter, transactions []octav.Transaction, expandMultiAsset bool) string {
	var sb strings.Builder
	writeLine(&sb, exporter.Headers())

	for _, tx := range transactions {
		rows := exporter.MapTransaction(tx)
		if !expandMultiAsset && len(rows) > 1 {
			rows = rows[:1]
		}
		for _, row := range rows {
			sb.WriteByte('\n')
			writeLine(&sb, row)
		}
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(escapeCell(cell))
	}
}
