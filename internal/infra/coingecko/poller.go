package coingecko

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"crypto_dash/internal/domain"
	"crypto_dash/internal/infra"
	"crypto_dash/internal/quotes"
)

var (
	// ErrInFlight is returned when a fetch is requested while another is running.
	ErrInFlight = errors.New("fetch already in flight")
	// ErrRateLimited is returned when a manual refresh exceeds the allowed rate.
	ErrRateLimited = errors.New("manual refresh rate limited")
)

// MarketFetcher is the source of market records.
type MarketFetcher interface {
	FetchMarkets(ctx context.Context, ids []string) ([]domain.MarketRecord, error)
}

// Poller refreshes the quote store on a fixed interval.
// At most one fetch runs at a time; overlapping ticks are skipped.
type Poller struct {
	fetcher  MarketFetcher
	store    *quotes.Store
	ids      []string
	onUpdate func(gen uint64)
	limiter  *infra.TokenBucket

	Interval time.Duration
	Timeout  time.Duration

	inFlight atomic.Bool
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewPoller creates a poller for coins writing into store.
// onUpdate runs after every successful replace.
func NewPoller(fetcher MarketFetcher, store *quotes.Store, coins []domain.CoinInfo, onUpdate func(gen uint64)) *Poller {
	return &Poller{
		fetcher:  fetcher,
		store:    store,
		ids:      domain.ProviderIDs(coins),
		onUpdate: onUpdate,
		Interval: 30 * time.Second,
		Timeout:  10 * time.Second,
	}
}

// SetManualLimiter rate limits Refresh calls. nil disables the limit.
func (p *Poller) SetManualLimiter(l *infra.TokenBucket) {
	p.limiter = l
}

// Start fetches once, then keeps polling until ctx is done or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	if err := p.poll(ctx); err != nil {
		slog.Warn("Initial quote fetch failed", slog.Any("error", err))
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Quote polling stopped")
				return
			case <-ticker.C:
				p.wg.Add(1)
				go p.tick(ctx)
			}
		}
	}()
}

func (p *Poller) tick(ctx context.Context) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Quote polling panic recovered", slog.Any("panic", r))
		}
	}()

	err := p.poll(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrInFlight):
		slog.Debug("Quote tick skipped, previous fetch still running")
	case errors.Is(err, context.Canceled):
	default:
		slog.Warn("Quote fetch failed", slog.Any("error", err))
	}
}

// Refresh runs an on-demand fetch under the same in-flight guard.
func (p *Poller) Refresh(ctx context.Context) error {
	if p.limiter != nil && !p.limiter.Allow() {
		return ErrRateLimited
	}
	return p.poll(ctx)
}

// Stop stops the polling and waits for running fetches.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

// poll fetches and replaces the store. The store is left as-is on error.
func (p *Poller) poll(ctx context.Context) error {
	if !p.inFlight.CompareAndSwap(false, true) {
		return ErrInFlight
	}
	defer p.inFlight.Store(false)

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	records, err := p.fetcher.FetchMarkets(ctx, p.ids)
	if err != nil {
		return err
	}

	gen := p.store.Replace(records, time.Now())
	slog.Debug("Quotes refreshed", slog.Int("coins", len(records)), slog.Uint64("generation", gen))

	if p.onUpdate != nil {
		p.onUpdate(gen)
	}
	return nil
}
