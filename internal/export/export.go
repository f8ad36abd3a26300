package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chainfolio/taxport/internal/octav"
)

var slugSeparators = regexp.MustCompile(`\s+`)

// Filename is the output naming contract: <platform-label-slug>-export-<date>.csv.
func Filename(exporter Exporter, now time.Time) string {
	slug := slugSeparators.ReplaceAllString(strings.ToLower(exporter.Label()), "-")
	return fmt.Sprintf("%s-export-%s.csv", slug, now.UTC().Format("2006-01-02"))
}

// Options selects what to export and where the CSV lands.
type Options struct {
	Platform         string
	Query            octav.TransactionsQuery
	ExpandMultiAsset bool
	OutputDir        string
	OnProgress       octav.ProgressFunc
}

// Result reports what an export produced. Requests equals the credits spent.
type Result struct {
	Path         string
	Transactions int
	Requests     int
}

// Run performs one full export: resolve the exporter, fetch every page, map
// and serialize, then write the file. Any fetch error aborts before anything
// is written; no partial CSV ever reaches disk.
func Run(ctx context.Context, source octav.TransactionSource, opts Options) (*Result, error) {
	exporter, err := Lookup(opts.Platform)
	if err != nil {
		return nil, err
	}

	fetched, err := octav.FetchAll(ctx, source, opts.Query, opts.OnProgress)
	if err != nil {
		return nil, err
	}

	csv := Build(exporter, fetched.Transactions, opts.ExpandMultiAsset)

	path := filepath.Join(opts.OutputDir, Filename(exporter, time.Now()))
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", path, err)
	}

	slog.Info("Export completed",
		"platform", exporter.Label(),
		"transactions", len(fetched.Transactions),
		"credits", fetched.Requests,
		"path", path)

	return &Result{
		Path:         path,
		Transactions: len(fetched.Transactions),
		Requests:     fetched.Requests,
	}, nil
}
