package quotes

import (
	"fmt"
	"io"
	"strings"

	"crypto_dash/internal/domain"
	"crypto_dash/internal/symbol"
)

// Frame is everything a render target paints in one pass.
type Frame struct {
	Strip      []domain.QuoteView `json:"strip"`
	Badge      domain.Badge       `json:"badge"`
	Selection  domain.Selection   `json:"selection"`
	Generation uint64             `json:"generation"`
}

// RenderTarget accepts a frame of quote view models and paints it.
// Paint is called with the dashboard locked and must not block.
type RenderTarget interface {
	Paint(frame Frame) error
}

// BuildStrip formats one entry per coin in display order. Coins missing
// from the snapshot get a placeholder price and no change.
func BuildStrip(coins []domain.CoinInfo, snap domain.Snapshot) []domain.QuoteView {
	views := make([]domain.QuoteView, 0, len(coins))
	for _, c := range coins {
		view := domain.QuoteView{Label: c.Label, Price: Placeholder}

		if rec, ok := snap.Lookup(c.ProviderID); ok {
			view.LogoURL = rec.Image
			if rec.HasPrice {
				view.Price = FormatUSD(rec.CurrentPrice)
			}
			view.Change, view.Direction = FormatChange(rec.PriceChange24h)
		}

		views = append(views, view)
	}
	return views
}

// RenderStrip returns the strip twice back to back. The page scrolls the
// track by half its width, so the second copy hides the wrap-around.
func RenderStrip(coins []domain.CoinInfo, snap domain.Snapshot) []domain.QuoteView {
	once := BuildStrip(coins, snap)
	doubled := make([]domain.QuoteView, 0, 2*len(once))
	doubled = append(doubled, once...)
	return append(doubled, once...)
}

// BadgeFor formats the price badge for a vendor symbol. Unmapped symbols
// and coins without a price yield an empty badge.
func BadgeFor(vendorSymbol string, snap domain.Snapshot) domain.Badge {
	id, ok := symbol.ProviderID(vendorSymbol)
	if !ok {
		return domain.Badge{}
	}
	rec, ok := snap.Lookup(id)
	if !ok || !rec.HasPrice {
		return domain.Badge{}
	}

	text := FormatUSD(rec.CurrentPrice)
	change, dir := FormatChange(rec.PriceChange24h)
	if change != "" {
		text = fmt.Sprintf("%s (%s)", text, change)
	}
	return domain.Badge{Text: text, Direction: dir}
}

// TextTarget paints frames as plain text lines.
type TextTarget struct {
	w io.Writer
}

// NewTextTarget creates a target writing to w.
func NewTextTarget(w io.Writer) *TextTarget {
	return &TextTarget{w: w}
}

// Paint writes the first copy of the strip, one coin per line.
func (t *TextTarget) Paint(frame Frame) error {
	n := len(frame.Strip) / 2
	var b strings.Builder
	for _, q := range frame.Strip[:n] {
		line := fmt.Sprintf("%-5s %14s %8s", q.Label, q.Price, q.Change)
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteByte('\n')
	}
	if frame.Badge.Text != "" {
		fmt.Fprintf(&b, "selected: %s\n", frame.Badge.Text)
	}
	_, err := io.WriteString(t.w, b.String())
	return err
}
