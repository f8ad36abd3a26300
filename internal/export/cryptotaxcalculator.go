package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(cryptoTaxCalculatorExporter{})
}

type cryptoTaxCalculatorExporter struct{}

func (cryptoTaxCalculatorExporter) Platform() string { return "crypto-tax-calculator" }
func (cryptoTaxCalculatorExporter) Label() string    { return "Crypto Tax Calculator" }

func (cryptoTaxCalculatorExporter) Headers() []string {
	return []string{
		"Timestamp (UTC)",
		"Type",
		"Base Currency",
		"Base Amount",
		"Quote Currency",
		"Quote Amount",
		"Fee Currency",
		"Fee Amount",
		"From",
		"To",
		"Blockchain",
		"ID",
		"Description",
		"Reference Price Per Unit",
		"Reference Price Currency",
	}
}

func (cryptoTaxCalculatorExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	for i := 0; i < n; i++ {
		in := assetAt(tx.AssetsIn, i)
		out := assetAt(tx.AssetsOut, i)

		feeCurrency, fee := "", ""
		if i == 0 {
			feeCurrency = nativeToken(tx.Chain.Key)
			fee = tx.Fees
		}

		price := ""
		if in != nil {
			price = in.Price
		}

		rows = append(rows, []string{
			cryptoTaxCalcDate(tx.Timestamp),
			mapType("crypto-tax-calculator", tx.Type),
			assetSymbol(in),
			assetBalance(in),
			assetSymbol(out),
			assetBalance(out),
			feeCurrency,
			fee,
			tx.From,
			tx.To,
			tx.Chain.Name,
			tx.Hash,
			tx.Protocol.Name,
			price,
			"USD",
		})
	}
	return rows
}
