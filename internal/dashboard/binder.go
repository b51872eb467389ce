package dashboard

import "fmt"

// Selector element ids on the page.
const (
	SymbolSelect   = "symbolSelect"
	IntervalSelect = "intervalSelect"
)

// ChangeEvent is a selector change sent by the page.
type ChangeEvent struct {
	Control string `json:"control"`
	Value   string `json:"value"`
}

// Binder routes selector change events to the dashboard.
type Binder struct {
	handlers map[string]func(string) error
}

// NewBinder binds the symbol and interval selectors of d.
func NewBinder(d *Dashboard) *Binder {
	return &Binder{handlers: map[string]func(string) error{
		SymbolSelect:   d.ApplySymbol,
		IntervalSelect: d.ApplyInterval,
	}}
}

// Dispatch applies ev to its control.
func (b *Binder) Dispatch(ev ChangeEvent) error {
	h, ok := b.handlers[ev.Control]
	if !ok {
		return fmt.Errorf("%w: unknown control %q", ErrInvalidSelection, ev.Control)
	}
	return h(ev.Value)
}
