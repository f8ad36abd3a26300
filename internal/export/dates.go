package export

import (
	"github.com/chainfolio/taxport/internal/octav"
)

// Date layouts are part of each platform's import contract and must match
// byte-for-byte. All instants are rendered in UTC.
const (
	layoutKoinly = "2006-01-02 15:04"
	layoutSlash  = "01/02/2006 15:04:05"
	layoutSpace  = "2006-01-02 15:04:05"
	layoutISOMs  = "2006-01-02T15:04:05.000Z"
	layoutTaxBit = "2006-01-02T15:04:05Z"
)

func koinlyDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutKoinly) + " UTC"
}

func cointrackerDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSlash)
}

func coinledgerDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutISOMs)
}

func taxbitDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutTaxBit)
}

func tokentaxDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutISOMs)
}

func accointingDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSlash)
}

func zenledgerDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSpace)
}

func cryptoTaxCalcDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSpace)
}

func tresFinanceDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSpace)
}

func cryptioDate(ts octav.Timestamp) string {
	return ts.UTC().Format(layoutSpace)
}
