package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(koinlyExporter{})
}

// Koinly's schema names columns by direction of money, so Sent maps to
// assetsOut and Received to assetsIn. The net-worth pair is filled from the
// transaction-level fiat value on the first row only.
type koinlyExporter struct{}

func (koinlyExporter) Platform() string { return "koinly" }
func (koinlyExporter) Label() string    { return "Koinly" }

func (koinlyExporter) Headers() []string {
	return []string{
		"Date",
		"Sent Amount",
		"Sent Currency",
		"Received Amount",
		"Received Currency",
		"Fee Amount",
		"Fee Currency",
		"Net Worth Amount",
		"Net Worth Currency",
		"Label",
		"Description",
		"TxHash",
	}
}

func (koinlyExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	for i := 0; i < n; i++ {
		out := assetAt(tx.AssetsOut, i)
		in := assetAt(tx.AssetsIn, i)

		fee, feeCurrency, netWorth := "", "", ""
		if i == 0 {
			fee = tx.Fees
			feeCurrency = nativeToken(tx.Chain.Key)
			netWorth = tx.ValueFiat
		}

		rows = append(rows, []string{
			koinlyDate(tx.Timestamp),
			assetBalance(out),
			assetSymbol(out),
			assetBalance(in),
			assetSymbol(in),
			fee,
			feeCurrency,
			netWorth,
			"USD",
			mapType("koinly", tx.Type),
			protocolOrChain(tx),
			tx.Hash,
		})
	}
	return rows
}
