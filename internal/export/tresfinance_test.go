package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/taxport/internal/octav"
)

func TestTresFinance_RowPerAssetPlusGas(t *testing.T) {
	exporter, err := Lookup("tres-finance")
	require.NoError(t, err)

	tx := makeTx(t,
		[]octav.Asset{asset("usdc", "100")},
		[]octav.Asset{asset("weth", "0.05"), asset("dai", "25")},
	)

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 4, "2 outflows + 1 inflow + gas")

	// Outflows first, direction sender, symbols uppercased.
	assert.Equal(t, "sender", rows[0][4])
	assert.Equal(t, "WETH", rows[0][6])
	assert.Equal(t, "sender", rows[1][4])
	assert.Equal(t, "DAI", rows[1][6])

	assert.Equal(t, "receiver", rows[2][4])
	assert.Equal(t, "USDC", rows[2][6])

	// Gas row: no asset symbol, amount from the raw fee string.
	gas := rows[3]
	assert.Equal(t, "sender", gas[4])
	assert.Equal(t, "gas", gas[5])
	assert.Equal(t, "", gas[6])
	assert.Equal(t, "0.004217", gas[7])
	assert.Equal(t, "0.01", gas[8])
}

func TestTresFinance_ZeroFeeSkipsGasRow(t *testing.T) {
	exporter, err := Lookup("tres-finance")
	require.NoError(t, err)

	tx := makeTx(t, []octav.Asset{asset("usdc", "100")}, nil)
	tx.Fees = "0"

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 1)
	assert.Equal(t, "receiver", rows[0][4])
}

// A transaction with no assets and no fee still yields one row so the
// platform never receives a silently dropped transaction.
func TestTresFinance_AllZeroFallbackRow(t *testing.T) {
	exporter, err := Lookup("tres-finance")
	require.NoError(t, err)

	tx := makeTx(t, nil, nil)
	tx.Fees = "0"
	tx.FeesFiat = "0"

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "sender", row[4])
	assert.Equal(t, "", row[6])
	assert.Equal(t, "0", row[7])
	assert.Equal(t, tx.Hash, row[10])
}

func TestTresFinance_MissingChainKeyIsManual(t *testing.T) {
	exporter, err := Lookup("tres-finance")
	require.NoError(t, err)

	tx := makeTx(t, nil, nil)
	tx.Fees = "0"
	tx.Chain = octav.Chain{}

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 1)
	assert.Equal(t, "manual", rows[0][3])
}
