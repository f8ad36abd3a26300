package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(coinledgerExporter{})
}

type coinledgerExporter struct{}

func (coinledgerExporter) Platform() string { return "coinledger" }
func (coinledgerExporter) Label() string    { return "CoinLedger" }

func (coinledgerExporter) Headers() []string {
	return []string{
		"Date (UTC)",
		"Platform (Optional)",
		"Asset Sent",
		"Amount Sent",
		"Asset Received",
		"Amount Received",
		"Fee Currency (Optional)",
		"Fee Amount (Optional)",
		"Type",
		"Description (Optional)",
		"TxHash (Optional)",
	}
}

func (coinledgerExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	// Description pairs the chain with a short hash prefix for eyeballing.
	hashPrefix := tx.Hash
	if len(hashPrefix) > 10 {
		hashPrefix = hashPrefix[:10]
	}
	description := tx.Chain.Name + " - " + hashPrefix

	for i := 0; i < n; i++ {
		out := assetAt(tx.AssetsOut, i)
		in := assetAt(tx.AssetsIn, i)

		feeCurrency, fee := "", ""
		if i == 0 {
			feeCurrency = nativeToken(tx.Chain.Key)
			fee = tx.Fees
		}

		rows = append(rows, []string{
			coinledgerDate(tx.Timestamp),
			tx.Protocol.Name,
			assetSymbol(out),
			assetBalance(out),
			assetSymbol(in),
			assetBalance(in),
			feeCurrency,
			fee,
			mapType("coinledger", tx.Type),
			description,
			tx.Hash,
		})
	}
	return rows
}
