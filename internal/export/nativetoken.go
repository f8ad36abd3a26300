package export

import "strings"

// chainNativeTokens maps a chain key to the symbol of its gas token. Fee
// columns are always denominated in the native token.
var chainNativeTokens = map[string]string{
	"ethereum":  "ETH",
	"polygon":   "MATIC",
	"arbitrum":  "ETH",
	"optimism":  "ETH",
	"base":      "ETH",
	"avalanche": "AVAX",
	"bsc":       "BNB",
	"fantom":    "FTM",
	"solana":    "SOL",
	"gnosis":    "xDAI",
	"celo":      "CELO",
	"moonbeam":  "GLMR",
	"moonriver": "MOVR",
	"cronos":    "CRO",
	"zksync":    "ETH",
	"linea":     "ETH",
	"scroll":    "ETH",
	"blast":     "ETH",
	"mantle":    "MNT",
	"manta":     "ETH",
	"mode":      "ETH",
	"zora":      "ETH",
}

// nativeToken returns the gas-token symbol for a chain, defaulting to ETH for
// chains missing from the table.
func nativeToken(chainKey string) string {
	if symbol, ok := chainNativeTokens[strings.ToLower(chainKey)]; ok {
		return symbol
	}
	return "ETH"
}
