package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(accointingExporter{})
}

type accointingExporter struct{}

func (accointingExporter) Platform() string { return "accointing" }
func (accointingExporter) Label() string    { return "Accointing" }

func (accointingExporter) Headers() []string {
	return []string{
		"transactionType",
		"date",
		"inBuyAmount",
		"inBuyAsset",
		"outSellAmount",
		"outSellAsset",
		"feeAmount (optional)",
		"feeAsset (optional)",
		"classification (optional)",
		"operationId (optional)",
	}
}

func (accointingExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	for i := 0; i < n; i++ {
		in := assetAt(tx.AssetsIn, i)
		out := assetAt(tx.AssetsOut, i)

		fee, feeAsset := "", ""
		if i == 0 {
			fee = tx.Fees
			feeAsset = nativeToken(tx.Chain.Key)
		}

		rows = append(rows, []string{
			mapType("accointing", tx.Type),
			accointingDate(tx.Timestamp),
			assetBalance(in),
			assetSymbol(in),
			assetBalance(out),
			assetSymbol(out),
			fee,
			feeAsset,
			tx.Type,
			tx.Hash,
		})
	}
	return rows
}
