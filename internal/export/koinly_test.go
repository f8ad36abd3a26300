package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainfolio/taxport/internal/octav"
)

func TestKoinly_SentReceivedOrientation(t *testing.T) {
	exporter, err := Lookup("koinly")
	require.NoError(t, err)

	tx := makeTx(t,
		[]octav.Asset{asset("USDC", "100")}, // received
		[]octav.Asset{asset("WETH", "0.05")}, // sent
	)

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 1)
	row := rows[0]

	// Sent columns come from assetsOut, Received from assetsIn.
	assert.Equal(t, "0.05", row[1])
	assert.Equal(t, "WETH", row[2])
	assert.Equal(t, "100", row[3])
	assert.Equal(t, "USDC", row[4])
}

func TestKoinly_NetWorthOnFirstRowOnly(t *testing.T) {
	exporter, err := Lookup("koinly")
	require.NoError(t, err)

	tx := makeTx(t,
		[]octav.Asset{asset("USDC", "100"), asset("WETH", "0.5")},
		nil,
	)

	rows := exporter.MapTransaction(tx)
	require.Len(t, rows, 2)

	assert.Equal(t, "123.45", rows[0][7])
	assert.Equal(t, "", rows[1][7])
	// The fiat currency marker stays on every row.
	assert.Equal(t, "USD", rows[0][8])
	assert.Equal(t, "USD", rows[1][8])
}

func TestKoinly_DateFormat(t *testing.T) {
	exporter, err := Lookup("koinly")
	require.NoError(t, err)

	rows := exporter.MapTransaction(makeTx(t, nil, nil))
	require.Len(t, rows, 1)
	assert.Equal(t, "2023-11-14 22:13 UTC", rows[0][0])
}

func TestKoinly_DescriptionFallsBackToChain(t *testing.T) {
	exporter, err := Lookup("koinly")
	require.NoError(t, err)

	tx := makeTx(t, nil, nil)
	tx.Protocol = octav.Protocol{}

	rows := exporter.MapTransaction(tx)
	assert.Equal(t, "Polygon", rows[0][10])
}
