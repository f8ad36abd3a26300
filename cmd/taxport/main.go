package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/chainfolio/taxport/internal/config"
	"github.com/chainfolio/taxport/internal/export"
	"github.com/chainfolio/taxport/internal/octav"
	"github.com/chainfolio/taxport/pkg/common/logger"
	"github.com/chainfolio/taxport/pkg/countcache"
	"github.com/chainfolio/taxport/pkg/events"
	"github.com/chainfolio/taxport/pkg/ratelimiter"
	"github.com/chainfolio/taxport/pkg/retry"
)

// creditPriceUSD is the list price of one page fetch.
var creditPriceUSD = decimal.RequireFromString("0.025")

type CLI struct {
	Export    ExportCmd    `cmd:"" help:"Export transactions to a tax platform CSV."`
	Estimate  EstimateCmd  `cmd:"" help:"Estimate the credit cost of the next export."`
	Credits   CreditsCmd   `cmd:"" help:"Show the remaining credit balance."`
	Portfolio PortfolioCmd `cmd:"" help:"Show per-address net worth."`
	Status    StatusCmd    `cmd:"" help:"Show per-address sync status."`
	Sync      SyncCmd      `cmd:"" help:"Trigger transaction indexing for the configured addresses."`
	Platforms PlatformsCmd `cmd:"" help:"List supported tax platforms."`

	Config string `help:"Path to config file." default:"configs/config.yaml" name:"config"`
	Debug  bool   `help:"Enable debug logs." name:"debug"`
}

type ExportCmd struct {
	Platform       string `arg:"" help:"Platform identifier, or 'all'."`
	Chain          string `help:"Filter by chain key." name:"chain"`
	Type           string `help:"Filter by transaction type." name:"type"`
	StartDate      string `help:"Filter from date (YYYY-MM-DD)." name:"start-date"`
	EndDate        string `help:"Filter to date (YYYY-MM-DD)." name:"end-date"`
	Expand         bool   `help:"Emit every row of multi-asset transactions instead of the first only." name:"expand"`
	Out            string `help:"Output directory (overrides config)." name:"out"`
	RetryRateLimit bool   `help:"Retry the export with backoff when rate limited." name:"retry-rate-limit"`
	NATSURL        string `help:"Publish export lifecycle events to this NATS server." name:"nats-url"`
}

type EstimateCmd struct{}

type CreditsCmd struct{}

type PortfolioCmd struct{}

type StatusCmd struct{}

type SyncCmd struct{}

type PlatformsCmd struct{}

type appContext struct {
	cfg    *config.Config
	client *octav.Client
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("taxport"),
		kong.Description("Export Octav transaction history to tax-platform CSV formats."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})

	err := kctx.Run(&cli)
	kctx.FatalIfErrorf(err)
}

func newAppContext(cli *CLI) (*appContext, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	opts := []octav.ClientOption{
		octav.WithTimeout(cfg.Client.RequestTimeout),
		octav.WithRateLimiter(ratelimiter.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.BurstSize)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, octav.WithBaseURL(cfg.BaseURL))
	}

	return &appContext{
		cfg:    cfg,
		client: octav.NewClient(cfg.APIKey, opts...),
	}, nil
}

func (c *ExportCmd) Run(cli *CLI) error {
	app, err := newAppContext(cli)
	if err != nil {
		return err
	}

	platforms := []string{c.Platform}
	if c.Platform == "all" {
		platforms = export.Platforms()
	} else if _, err := export.Lookup(c.Platform); err != nil {
		return err
	}

	outputDir := app.cfg.OutputDir
	if c.Out != "" {
		outputDir = c.Out
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	emitter := events.Emitter(events.NopEmitter{})
	if c.NATSURL != "" {
		emitter, err = events.NewNATSEmitter(c.NATSURL, "")
		if err != nil {
			return fmt.Errorf("connect NATS: %w", err)
		}
	}
	defer emitter.Close()

	query := octav.TransactionsQuery{
		Addresses: app.cfg.Addresses,
		Chain:     c.Chain,
		Type:      c.Type,
		StartDate: c.StartDate,
		EndDate:   c.EndDate,
	}

	// Each export owns its own accumulator and HTTP calls, so platforms can
	// run concurrently without coordination.
	g, ctx := errgroup.WithContext(context.Background())
	results := make([]*export.Result, len(platforms))

	for i, platform := range platforms {
		i, platform := i, platform
		g.Go(func() error {
			run := func() error {
				res, err := export.Run(ctx, app.client, export.Options{
					Platform:         platform,
					Query:            query,
					ExpandMultiAsset: c.Expand,
					OutputDir:        outputDir,
					OnProgress: func(fetched int) {
						slog.Info("Fetching transactions", "platform", platform, "fetched", fetched)
						_ = emitter.EmitPage(platform, fetched)
					},
				})
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			}

			_ = emitter.EmitStarted(platform)

			var err error
			if c.RetryRateLimit {
				err = retry.Do(run, retry.Policy{
					InitialInterval: rateLimitInterval,
					MaxElapsedTime:  10 * time.Minute,
					RetryIf:         isRateLimited,
					OnRetry: func(err error, next time.Duration) {
						slog.Warn("Rate limited, retrying", "platform", platform, "next", next, "err", err)
					},
				})
			} else {
				err = run()
			}
			if err != nil {
				_ = emitter.EmitFailed(platform, err)
				return fmt.Errorf("%s: %w", platform, err)
			}

			res := results[i]
			_ = emitter.EmitCompleted(platform, res.Transactions, res.Requests)
			fmt.Printf("%s: %d transactions, %d credits -> %s\n", platform, res.Transactions, res.Requests, res.Path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	rememberCount(app.cfg, results)
	return nil
}

const rateLimitInterval = 2 * time.Second

func isRateLimited(err error) bool {
	var rl *octav.RateLimitError
	return errors.As(err, &rl)
}

// rememberCount stores the latest transaction count for cost estimation on
// the next run. Failures here are logged, never fatal; the cache is an
// optimization only.
func rememberCount(cfg *config.Config, results []*export.Result) {
	var count int
	for _, res := range results {
		if res != nil {
			count = res.Transactions
			break
		}
	}
	if count == 0 {
		return
	}

	store, err := countcache.Open(cfg.CachePath)
	if err != nil {
		slog.Warn("Open count cache failed", "err", err)
		return
	}
	defer store.Close()

	if err := store.Set(countcache.Key(cfg.Addresses), int64(count)); err != nil {
		slog.Warn("Update count cache failed", "err", err)
	}
}

func (EstimateCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := countcache.Open(cfg.CachePath)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Get(countcache.Key(cfg.Addresses))
	if errors.Is(err, countcache.ErrNotFound) {
		fmt.Println("No previous export recorded; run an export first to estimate cost.")
		return nil
	}
	if err != nil {
		return err
	}

	pages := (count + octav.PageSize - 1) / octav.PageSize
	if pages == 0 {
		pages = 1
	}
	cost := creditPriceUSD.Mul(decimal.NewFromInt(pages))

	fmt.Printf("Last known history: %d transactions\n", count)
	fmt.Printf("Estimated export cost: ~%d credits ($%s)\n", pages, cost.StringFixed(3))
	return nil
}

func (CreditsCmd) Run(cli *CLI) error {
	app, err := newAppContext(cli)
	if err != nil {
		return err
	}

	credits, err := app.client.GetCredits(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Remaining credits: %s\n", decimal.NewFromFloat(credits).String())
	return nil
}

func (PortfolioCmd) Run(cli *CLI) error {
	app, err := newAppContext(cli)
	if err != nil {
		return err
	}

	entries, err := app.client.GetPortfolio(context.Background(), app.cfg.Addresses)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("%s\tnet worth: $%s\tcash: $%s\tupdated: %s\n",
			entry.Address, entry.Networth, entry.CashBalance, entry.LastUpdated)
	}
	return nil
}

func (StatusCmd) Run(cli *CLI) error {
	app, err := newAppContext(cli)
	if err != nil {
		return err
	}

	entries, err := app.client.GetStatus(context.Background(), app.cfg.Addresses)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		lastSync := "never"
		if entry.TransactionsLastSync != nil {
			lastSync = *entry.TransactionsLastSync
		}
		fmt.Printf("%s\tportfolio: %s\ttransactions: %s\tsyncing: %t\n",
			entry.Address, entry.PortfolioLastSync, lastSync, entry.SyncInProgress)
	}
	return nil
}

func (SyncCmd) Run(cli *CLI) error {
	app, err := newAppContext(cli)
	if err != nil {
		return err
	}

	status, err := app.client.SyncTransactions(context.Background(), app.cfg.Addresses)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}

func (PlatformsCmd) Run(cli *CLI) error {
	for _, platform := range export.Platforms() {
		exporter, err := export.Lookup(platform)
		if err != nil {
			return err
		}
		fmt.Printf("%-22s %s\n", platform, exporter.Label())
	}
	return nil
}
