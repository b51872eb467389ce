// Package dashboard holds the state of one dashboard view and binds the
// symbol and interval selectors to the chart widgets and the badge.
package dashboard

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"crypto_dash/internal/chart"
	"crypto_dash/internal/domain"
	"crypto_dash/internal/quotes"
	"crypto_dash/internal/symbol"
)

// ErrInvalidSelection is returned for an empty symbol or interval.
var ErrInvalidSelection = errors.New("invalid selection")

// Dashboard owns the selection, the quote store and the chart widgets.
type Dashboard struct {
	coins    []domain.CoinInfo
	store    *quotes.Store
	charts   *chart.Controller
	defaults domain.Selection

	mu        sync.Mutex
	selection domain.Selection
	badge     domain.Badge
	targets   []quotes.RenderTarget
}

// New creates a dashboard. defaults is applied by Boot.
func New(coins []domain.CoinInfo, store *quotes.Store, charts *chart.Controller, defaults domain.Selection) *Dashboard {
	if defaults.Symbol == "" {
		defaults.Symbol = symbol.DefaultSymbol
	}
	if defaults.Interval == "" {
		defaults.Interval = symbol.DefaultInterval
	}
	return &Dashboard{
		coins:    coins,
		store:    store,
		charts:   charts,
		defaults: defaults,
	}
}

// AddTarget registers a render target for every later paint.
func (d *Dashboard) AddTarget(t quotes.RenderTarget) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.targets = append(d.targets, t)
}

// Boot selects the default interval and symbol, which creates both widgets.
func (d *Dashboard) Boot() error {
	d.mu.Lock()
	d.selection.Interval = d.defaults.Interval
	d.mu.Unlock()

	return d.ApplySymbol(d.defaults.Symbol)
}

// ApplySymbol switches both widgets to sym at the current interval and
// refreshes the badge.
func (d *Dashboard) ApplySymbol(sym string) error {
	if sym == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidSelection)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.selection.Symbol = sym
	err := d.charts.Render(sym, d.selection.Interval)
	d.badge = quotes.BadgeFor(sym, d.store.Snapshot())

	slog.Info("Symbol applied", slog.String("symbol", sym), slog.String("interval", d.selection.Interval))
	d.paint()
	return err
}

// ApplyInterval switches both widgets to interval for the current symbol.
// The badge is keyed by symbol only and is left as is.
func (d *Dashboard) ApplyInterval(interval string) error {
	if interval == "" {
		return fmt.Errorf("%w: empty interval", ErrInvalidSelection)
	}
	if !symbol.ValidInterval(interval) {
		slog.Warn("Unknown interval code, technical analysis falls back to 1h", slog.String("interval", interval))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.selection.Interval = interval
	err := d.charts.Render(d.selection.Symbol, interval)

	slog.Info("Interval applied", slog.String("symbol", d.selection.Symbol), slog.String("interval", interval))
	d.paint()
	return err
}

// OnQuotes repaints the strip and badge after the store was replaced.
func (d *Dashboard) OnQuotes(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.badge = quotes.BadgeFor(d.selection.Symbol, d.store.Snapshot())
	d.paint()
}

// Frame returns what a newly attached target should paint.
func (d *Dashboard) Frame() quotes.Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frame(d.store.Snapshot())
}

// Selection returns the current selector values.
func (d *Dashboard) Selection() domain.Selection {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selection
}

// Coins returns the strip coins in display order.
func (d *Dashboard) Coins() []domain.CoinInfo {
	return d.coins
}

func (d *Dashboard) frame(snap domain.Snapshot) quotes.Frame {
	return quotes.Frame{
		Strip:      quotes.RenderStrip(d.coins, snap),
		Badge:      d.badge,
		Selection:  d.selection,
		Generation: snap.Generation,
	}
}

// paint must be called with d.mu held.
func (d *Dashboard) paint() {
	frame := d.frame(d.store.Snapshot())
	for _, t := range d.targets {
		if err := t.Paint(frame); err != nil {
			slog.Warn("Render target failed", slog.Any("error", err))
		}
	}
}
