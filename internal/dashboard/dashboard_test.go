package dashboard

import (
	"errors"
	"sync"
	"testing"
	"time"

	"crypto_dash/internal/chart"
	"crypto_dash/internal/domain"
	"crypto_dash/internal/quotes"

	"github.com/shopspring/decimal"
)

type frameRecorder struct {
	mu     sync.Mutex
	frames []quotes.Frame
}

func (r *frameRecorder) Paint(f quotes.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *frameRecorder) last() quotes.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

func (r *frameRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func newTestDashboard(t *testing.T) (*Dashboard, *quotes.Store, *chart.RecordingProvider, *frameRecorder) {
	t.Helper()
	store := quotes.NewStore()
	rec := chart.NewRecordingProvider()
	d := New(domain.DefaultCoins, store, chart.NewController(rec, chart.DefaultOptions()), domain.Selection{})
	frames := &frameRecorder{}
	d.AddTarget(frames)
	return d, store, rec, frames
}

func change(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// lastMounts returns the most recent chart and TA configs mounted.
func lastMounts(t *testing.T, rec *chart.RecordingProvider) (chart.ChartConfig, chart.TAConfig) {
	t.Helper()
	var c chart.ChartConfig
	var ta chart.TAConfig
	for _, call := range rec.Calls() {
		if call.Op != "mount" {
			continue
		}
		switch cfg := call.Config.(type) {
		case chart.ChartConfig:
			c = cfg
		case chart.TAConfig:
			ta = cfg
		}
	}
	return c, ta
}

func TestDashboard_Boot(t *testing.T) {
	d, _, rec, frames := newTestDashboard(t)

	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	sel := d.Selection()
	if sel.Symbol != "BINANCE:BTCUSDT" || sel.Interval != "15" {
		t.Errorf("unexpected default selection %+v", sel)
	}

	c, ta := lastMounts(t, rec)
	if c.Symbol != "BINANCE:BTCUSDT" || c.Interval != "15" || ta.Interval != "15m" {
		t.Errorf("unexpected widgets %+v / %+v", c, ta)
	}

	f := frames.last()
	if len(f.Strip) != 2*len(domain.DefaultCoins) {
		t.Errorf("expected doubled strip, got %d entries", len(f.Strip))
	}
	if f.Badge.Text != "" {
		t.Errorf("badge should be blank without quotes, got %q", f.Badge.Text)
	}
}

func TestDashboard_ApplySymbolKeepsInterval(t *testing.T) {
	d, store, rec, frames := newTestDashboard(t)
	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if err := d.ApplyInterval("60"); err != nil {
		t.Fatalf("ApplyInterval failed: %v", err)
	}

	store.Replace([]domain.MarketRecord{
		{ID: "ethereum", CurrentPrice: decimal.RequireFromString("2300.1"), HasPrice: true, PriceChange24h: change("-1.1")},
	}, time.Now())

	if err := d.ApplySymbol("BINANCE:ETHUSDT"); err != nil {
		t.Fatalf("ApplySymbol failed: %v", err)
	}

	c, ta := lastMounts(t, rec)
	if c.Symbol != "BINANCE:ETHUSDT" || c.Interval != "60" {
		t.Errorf("chart = %s@%s, want BINANCE:ETHUSDT@60", c.Symbol, c.Interval)
	}
	if ta.Symbol != "BINANCE:ETHUSDT" || ta.Interval != "1h" {
		t.Errorf("ta = %s@%s, want BINANCE:ETHUSDT@1h", ta.Symbol, ta.Interval)
	}

	b := frames.last().Badge
	if b.Text != "$2,300.10 (-1.10%)" || b.Direction != domain.DirectionDown {
		t.Errorf("badge = %+v", b)
	}
}

func TestDashboard_ApplyIntervalKeepsSymbolAndBadge(t *testing.T) {
	d, store, rec, frames := newTestDashboard(t)
	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}

	// Quotes arrive after the badge was computed; an interval change must
	// not recompute it.
	store.Replace([]domain.MarketRecord{
		{ID: "bitcoin", CurrentPrice: decimal.RequireFromString("43250.5"), HasPrice: true},
	}, time.Now())

	if err := d.ApplyInterval("D"); err != nil {
		t.Fatalf("ApplyInterval failed: %v", err)
	}

	c, ta := lastMounts(t, rec)
	if c.Symbol != "BINANCE:BTCUSDT" || c.Interval != "D" || ta.Interval != "1D" {
		t.Errorf("unexpected widgets %+v / %+v", c, ta)
	}
	if got := frames.last().Badge.Text; got != "" {
		t.Errorf("interval change must not refresh the badge, got %q", got)
	}

	d.OnQuotes(store.Generation())
	if got := frames.last().Badge.Text; got != "$43,250.50" {
		t.Errorf("badge after quotes = %q", got)
	}
}

func TestDashboard_UnknownIntervalFallsBack(t *testing.T) {
	d, _, rec, _ := newTestDashboard(t)
	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	if err := d.ApplyInterval("M"); err != nil {
		t.Fatalf("ApplyInterval failed: %v", err)
	}
	c, ta := lastMounts(t, rec)
	if c.Interval != "M" || ta.Interval != "1h" {
		t.Errorf("chart=%q ta=%q, want M and 1h", c.Interval, ta.Interval)
	}
}

func TestDashboard_EmptySelectionRejected(t *testing.T) {
	d, _, rec, frames := newTestDashboard(t)

	if err := d.ApplySymbol(""); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
	if err := d.ApplyInterval(""); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection, got %v", err)
	}
	if len(rec.Calls()) != 0 || frames.count() != 0 {
		t.Error("rejected selections must not touch widgets or targets")
	}
}

func TestDashboard_OnQuotesPaintsEveryTarget(t *testing.T) {
	d, store, _, frames := newTestDashboard(t)
	second := &frameRecorder{}
	d.AddTarget(second)

	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	gen := store.Replace([]domain.MarketRecord{
		{ID: "bitcoin", CurrentPrice: decimal.RequireFromString("1"), HasPrice: true, PriceChange24h: change("0.5")},
	}, time.Now())
	d.OnQuotes(gen)

	for _, r := range []*frameRecorder{frames, second} {
		f := r.last()
		if f.Generation != gen {
			t.Errorf("frame generation = %d, want %d", f.Generation, gen)
		}
		if f.Strip[0].Price != "$1.00" || f.Strip[0].Change != "+0.50%" {
			t.Errorf("unexpected BTC entry %+v", f.Strip[0])
		}
		if f.Badge.Text != "$1.00 (+0.50%)" {
			t.Errorf("badge = %q", f.Badge.Text)
		}
	}
}

func TestBinder_Dispatch(t *testing.T) {
	d, _, rec, _ := newTestDashboard(t)
	if err := d.Boot(); err != nil {
		t.Fatalf("Boot failed: %v", err)
	}
	b := NewBinder(d)

	if err := b.Dispatch(ChangeEvent{Control: SymbolSelect, Value: "BINANCE:SOLUSDT"}); err != nil {
		t.Fatalf("symbol dispatch failed: %v", err)
	}
	if err := b.Dispatch(ChangeEvent{Control: IntervalSelect, Value: "W"}); err != nil {
		t.Fatalf("interval dispatch failed: %v", err)
	}
	if err := b.Dispatch(ChangeEvent{Control: "themeSelect", Value: "light"}); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("expected ErrInvalidSelection for unknown control, got %v", err)
	}

	if sel := d.Selection(); sel.Symbol != "BINANCE:SOLUSDT" || sel.Interval != "W" {
		t.Errorf("selection = %+v", sel)
	}
	c, _ := lastMounts(t, rec)
	if c.Symbol != "BINANCE:SOLUSDT" || c.Interval != "W" {
		t.Errorf("chart = %+v", c)
	}
}
