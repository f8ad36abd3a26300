package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(taxbitExporter{})
}

type taxbitExporter struct{}

func (taxbitExporter) Platform() string { return "taxbit" }
func (taxbitExporter) Label() string    { return "TaxBit" }

func (taxbitExporter) Headers() []string {
	return []string{
		"Date and Time",
		"Transaction Type",
		"Sent Quantity",
		"Sent Currency",
		"Sending Source",
		"Received Quantity",
		"Received Currency",
		"Receiving Destination",
		"Fee",
		"Fee Currency",
		"Exchange Transaction ID",
		"Blockchain Transaction Hash",
	}
}

func (taxbitExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)
	source := protocolOrChain(tx)

	for i := 0; i < n; i++ {
		out := assetAt(tx.AssetsOut, i)
		in := assetAt(tx.AssetsIn, i)

		fee, feeCurrency := "", ""
		if i == 0 {
			fee = tx.Fees
			feeCurrency = nativeToken(tx.Chain.Key)
		}

		rows = append(rows, []string{
			taxbitDate(tx.Timestamp),
			mapType("taxbit", tx.Type),
			assetBalance(out),
			assetSymbol(out),
			source,
			assetBalance(in),
			assetSymbol(in),
			source,
			fee,
			feeCurrency,
			"",
			tx.Hash,
		})
	}
	return rows
}
