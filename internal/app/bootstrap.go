package app

import (
	"context"
	"fmt"
	"log/slog"

	"crypto_dash/internal/chart"
	"crypto_dash/internal/dashboard"
	"crypto_dash/internal/domain"
	"crypto_dash/internal/infra"
	"crypto_dash/internal/infra/coingecko"
	"crypto_dash/internal/quotes"
)

// Bootstrap orchestrates the application startup sequence
type Bootstrap struct {
	Config    *infra.Config
	Store     *quotes.Store
	Embeds    *chart.EmbedProvider
	Dashboard *dashboard.Dashboard
	Poller    *coingecko.Poller
}

// NewBootstrap creates a new Bootstrap instance
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads configuration, installs the logger and wires the
// dashboard to its quote poller. Nothing is started yet.
func (b *Bootstrap) Initialize(configPath string) error {
	cfg, err := infra.LoadConfig(infra.ResolveConfigPath(configPath))
	if err != nil {
		return err
	}
	return b.InitializeWith(cfg)
}

// InitializeWith wires the components from an already loaded config.
func (b *Bootstrap) InitializeWith(cfg *infra.Config) error {
	b.Config = cfg
	slog.SetDefault(infra.NewLogger(cfg))
	slog.Info("🚀 Bootstrapping Crypto Dashboard...", slog.String("version", cfg.App.Version))

	opts := chart.DefaultOptions()
	if cfg.UI.Locale != "" {
		opts.Locale = cfg.UI.Locale
	}
	if cfg.UI.Theme != "" {
		opts.Theme = cfg.UI.Theme
	}

	b.Store = quotes.NewStore()
	b.Embeds = chart.NewEmbedProvider()
	b.Dashboard = dashboard.New(
		domain.DefaultCoins,
		b.Store,
		chart.NewController(b.Embeds, opts),
		domain.Selection{Symbol: cfg.UI.DefaultSymbol, Interval: cfg.UI.DefaultInterval},
	)

	client := coingecko.NewClient(cfg.API.CoinGecko.BaseURL, cfg.FetchTimeout())
	b.Poller = coingecko.NewPoller(client, b.Store, domain.DefaultCoins, b.Dashboard.OnQuotes)
	b.Poller.Interval = cfg.RefreshInterval()
	b.Poller.Timeout = cfg.FetchTimeout()
	b.Poller.SetManualLimiter(infra.NewPerMinuteLimiter(cfg.API.CoinGecko.ManualRefreshPerMin))

	slog.Info("✅ Components wired",
		slog.Int("coins", len(domain.DefaultCoins)),
		slog.Duration("refresh", b.Poller.Interval))
	return nil
}

// Run boots the dashboard and starts polling. It returns once the
// first fetch has completed or failed.
func (b *Bootstrap) Run(ctx context.Context) error {
	if b.Dashboard == nil {
		return fmt.Errorf("bootstrap not initialized")
	}
	if err := b.Dashboard.Boot(); err != nil {
		return fmt.Errorf("failed to mount chart widgets: %w", err)
	}
	b.Poller.Start(ctx)
	return nil
}

// Stop stops the poller.
func (b *Bootstrap) Stop() {
	if b.Poller != nil {
		b.Poller.Stop()
	}
}
