package export

import "github.com/chainfolio/taxport/internal/octav"

func init() {
	register(cryptioExporter{})
}

// Cryptio classifies every row as deposit, withdraw or trade based on which
// sides of that row are populated. Unlike the other platforms the order type
// is recomputed per row: a swap with two outflows and one inflow yields a
// "trade" row followed by a "withdraw" row, not two "trade" rows.
type cryptioExporter struct{}

func (cryptioExporter) Platform() string { return "cryptio" }
func (cryptioExporter) Label() string    { return "Cryptio" }

func (cryptioExporter) Headers() []string {
	return []string{
		"date",
		"orderType",
		"incomingAsset",
		"incomingVolume",
		"outgoingAsset",
		"outgoingVolume",
		"feeAsset",
		"feeVolume",
		"transactionHash",
		"parties",
		"notes",
	}
}

// transactionOrderType classifies the transaction as a whole; used for row 0
// and as the fallback when a transaction moved no assets.
func transactionOrderType(tx octav.Transaction) string {
	hasIn := len(tx.AssetsIn) > 0
	hasOut := len(tx.AssetsOut) > 0
	switch {
	case hasIn && hasOut:
		return "trade"
	case hasIn:
		return "deposit"
	case hasOut:
		return "withdraw"
	default:
		return mapType("cryptio", tx.Type)
	}
}

func (cryptioExporter) MapTransaction(tx octav.Transaction) [][]string {
	n := rowCount(tx)
	rows := make([][]string, 0, n)

	orderType := transactionOrderType(tx)
	hasFee := feePositive(tx.Fees)
	notes := tx.Type + " on " + tx.Chain.Name

	for i := 0; i < n; i++ {
		in := assetAt(tx.AssetsIn, i)
		out := assetAt(tx.AssetsOut, i)

		rowType := orderType
		if i > 0 {
			switch {
			case in != nil && out != nil:
				rowType = "trade"
			case in != nil:
				rowType = "deposit"
			case out != nil:
				rowType = "withdraw"
			}
		}

		feeAsset, feeVolume := "", ""
		if i == 0 && hasFee {
			feeAsset = nativeToken(tx.Chain.Key)
			feeVolume = tx.Fees
		}

		rows = append(rows, []string{
			cryptioDate(tx.Timestamp),
			rowType,
			assetSymbol(in),
			assetBalance(in),
			assetSymbol(out),
			assetBalance(out),
			feeAsset,
			feeVolume,
			tx.Hash,
			protocolOrChain(tx),
			notes,
		})
	}
	return rows
}
