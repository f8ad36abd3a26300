package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(tokentaxExporter{})
}

type tokentaxExporter struct{}

func (tokentaxExporter) Platform() string { return "tokentax" }
func (tokentaxExporter) Label() string    { return "TokenTax" }

func (tokentaxExporter) Headers() []string {
	return []string{
		"Type",
		"BuyAmount",
		"BuyCurrency",
		"SellAmount",
		"SellCurrency",
		"FeeAmount",
		"FeeCurrency",
		"Exchange",
		"Group",
		"Comment",
		"Date",
	}
}

func (tokentaxExporter) MapTransaction(tx octav.Transaction) [][]string {
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
			mapType("tokentax", tx.Type),
			assetBalance(in),
			assetSymbol(in),
			assetBalance(out),
			assetSymbol(out),
			fee,
			feeCurrency,
			protocolOrChain(tx),
			tx.Chain.Name,
			tx.Hash,
			tokentaxDate(tx.Timestamp),
		})
	}
	return rows
}
