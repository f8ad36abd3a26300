package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(zenledgerExporter{})
}

type zenledgerExporter struct{}

func (zenledgerExporter) Platform() string { return "zenledger" }
func (zenledgerExporter) Label() string    { return "ZenLedger" }

func (zenledgerExporter) Headers() []string {
	return []string{
		"Timestamp",
		"Type",
		"In Amount",
		"In Currency",
		"Out Amount",
		"Out Currency",
		"Fee Amount",
		"Fee Currency",
		"Exchange",
		"US Based",
	}
}

func (zenledgerExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	for i := 0; i < n; i++ {
		in := assetAt(tx.AssetsIn, i)
		out := assetAt(tx.AssetsOut, i)

		fee, feeCurrency := "", ""
		if i == 0 {
			fee = tx.Fees
			feeCurrency = nativeToken(tx.Chain.Key)
		}

		rows = append(rows, []string{
			zenledgerDate(tx.Timestamp),
			mapType("zenledger", tx.Type),
			assetBalance(in),
			assetSymbol(in),
			assetBalance(out),
			assetSymbol(out),
			fee,
			feeCurrency,
			protocolOrChain(tx),
			"",
		})
	}
	return rows
}
