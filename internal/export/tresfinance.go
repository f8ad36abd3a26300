package export

import (
	"strings"

	"github.com/chainfolio/taxport/internal/octav"
)

func init() {
	register(tresFinanceExporter{})
}

// Tres Finance does not use the shared in/out pairing model. It takes one row
// per individual asset movement (direction "sender" for outflows, "receiver"
// for inflows), a synthetic "gas" row when a positive fee was paid, and a
// single zero-amount fallback row when a transaction moved nothing at all so
// the platform never receives a silently dropped transaction.
type tresFinanceExporter struct{}

func (tresFinanceExporter) Platform() string { return "tres-finance" }
func (tresFinanceExporter) Label() string    { return "Tres Finance" }

func (tresFinanceExporter) Headers() []string {
	return []string{
		"Timestamp",
		"Wallet",
		"3rd Party",
		"Network",
		"Direction",
		"Type",
		"Asset",
		"Amount",
		"Fiat Value",
		"Fiat Currency",
		"Tx Hash",
	}
}

func (tresFinanceExporter) MapTransaction(tx octav.Transaction) [][]string {
	var rows [][]string

	ts := tresFinanceDate(tx.Timestamp)
	network := tx.Chain.Key
	if network == "" {
		network = "manual"
	}
	txType := mapType("tres-finance", tx.Type)

	for _, asset := range tx.AssetsOut {
		rows = append(rows, []string{
			ts, tx.From, tx.To, network,
			"sender", txType,
			strings.ToUpper(asset.Symbol), asset.Balance,
			asset.Value, "usd", tx.Hash,
		})
	}

	for _, asset := range tx.AssetsIn {
		rows = append(rows, []string{
			ts, tx.From, tx.To, network,
			"receiver", txType,
			strings.ToUpper(asset.Symbol), asset.Balance,
			asset.Value, "usd", tx.Hash,
		})
	}

	// Gas on its own row; Tres resolves the asset from the network.
	if feePositive(tx.Fees) {
		rows = append(rows, []string{
			ts, tx.From, tx.To, network,
			"sender", "gas",
			"", tx.Fees,
			tx.FeesFiat, "usd", tx.Hash,
		})
	}

	if len(rows) == 0 {
		rows = append(rows, []string{
			ts, tx.From, tx.To, network,
			"sender", txType,
			"", "0",
			"", "usd", tx.Hash,
		})
	}

	return rows
}
