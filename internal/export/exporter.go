// Package export maps Octav transactions into tax-platform CSV formats.
//
// Each platform is one Exporter: a fixed header list plus a pure mapping from
// a transaction to one or more rows. The divergences between platforms
// (Koinly's sent/received orientation, Cryptio's per-row order types, Tres
// Finance's per-asset row model) are genuine contract differences with the
// destination tools, so each exporter owns its own mapping instead of sharing
// one parameterized algorithm.
package export

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/chainfolio/taxport/internal/octav"
)

// Exporter maps transactions into a platform-specific row schema. Every row
// returned by MapTransaction has exactly len(Headers()) cells in header
// order. Cells are plain strings; CSV escaping happens in Build.
type Exporter interface {
	Platform() string
	Label() string
	Headers() []string
	MapTransaction(tx octav.Transaction) [][]string
}

var registry = map[string]Exporter{}

func register(e Exporter) {
	if _, dup := registry[e.Platform()]; dup {
		panic("export: duplicate platform " + e.Platform())
	}
	registry[e.Platform()] = e
}

// Lookup resolves a platform identifier. The registry is populated at init
// time, so a miss means a typo'd identifier, not a missing registration.
func Lookup(platform string) (Exporter, error) {
	e, ok := registry[platform]
	if !ok {
		return nil, fmt.Errorf("unknown platform %q (known: %v)", platform, Platforms())
	}
	return e, nil
}

// Platforms lists registered platform identifiers in stable order.
func Platforms() []string {
	keys := lo.Keys(registry)
	sort.Strings(keys)
	return keys
}

// rowCount is the shared row-expansion policy: one row per paired in/out
// index, minimum one. Pairing assetsIn[i] with assetsOut[i] is a display
// convention only; the API does not guarantee the arrays align by economic
// counterpart.
func rowCount(tx octav.Transaction) int {
	n := max(len(tx.AssetsIn), len(tx.AssetsOut))
	if n == 0 {
		return 1
	}
	return n
}

// assetAt returns the i-th asset or nil past the end of the slice.
func assetAt(assets []octav.Asset, i int) *octav.Asset {
	if i < len(assets) {
		return &assets[i]
	}
	return nil
}

func assetBalance(a *octav.Asset) string {
	if a == nil {
		return ""
	}
	return a.Balance
}

func assetSymbol(a *octav.Asset) string {
	if a == nil {
		return ""
	}
	return a.Symbol
}

// feePositive reports whether the raw fee string parses to a value above
// zero. Decimal comparison avoids float rounding on long fee strings.
func feePositive(fees string) bool {
	if fees == "" {
		return false
	}
	d, err := decimal.NewFromString(fees)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// protocolOrChain is the display context most platforms want: the protocol
// name when present, the chain name for plain wallet transfers.
func protocolOrChain(tx octav.Transaction) string {
	if tx.Protocol.Name != "" {
		return tx.Protocol.Name
	}
	return tx.Chain.Name
}
