package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(cointrackerExporter{})
}

type cointrackerExporter struct{}

func (cointrackerExporter) Platform() string { return "cointracker" }
func (cointrackerExporter) Label() string    { return "CoinTracker" }

func (cointrackerExporter) Headers() []string {
	return []string{
		"Date",
		"Received Quantity",
		"Received Currency",
		"Sent Quantity",
		"Sent Currency",
		"Fee Amount",
		"Fee Currency",
		"Tag",
	}
}

func (cointrackerExporter) MapTransaction(tx octav.Transaction) [][]string {
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
			cointrackerDate(tx.Timestamp),
			assetBalance(in),
			assetSymbol(in),
			assetBalance(out),
			assetSymbol(out),
			fee,
			feeCurrency,
			mapType("cointracker", tx.Type),
		})
	}
	return rows
}
