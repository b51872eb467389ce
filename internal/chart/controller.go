package chart

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// Slot is the state of one widget container.
type Slot struct {
	Container string `json:"container"`
	Rendered  bool   `json:"rendered"`
	Symbol    string `json:"symbol,omitempty"`
	Interval  string `json:"interval,omitempty"`
}

// Controller owns the price chart and technical-analysis slots.
// Every Render tears both widgets down and recreates them.
type Controller struct {
	provider Provider
	opts     Options

	mu    sync.Mutex
	chart Slot
	ta    Slot
}

// NewController creates a controller with both slots absent.
func NewController(provider Provider, opts Options) *Controller {
	return &Controller{
		provider: provider,
		opts:     opts,
		chart:    Slot{Container: opts.ChartContainer},
		ta:       Slot{Container: opts.TAContainer},
	}
}

// Render recreates both widgets for (sym, interval). A slot whose mount
// fails is left absent; all errors are returned joined.
func (c *Controller) Render(sym, interval string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	chartErr := c.replace(&c.chart, NewChartConfig(c.opts, sym, interval), interval)
	taErr := c.replace(&c.ta, NewTAConfig(c.opts, sym, interval), interval)

	slog.Debug("Chart widgets rendered",
		slog.String("symbol", sym),
		slog.String("interval", interval))

	return errors.Join(chartErr, taErr)
}

// replace records the chart interval code on the slot, also for TA.
func (c *Controller) replace(slot *Slot, cfg WidgetConfig, interval string) error {
	if err := c.provider.Unmount(slot.Container); err != nil {
		return fmt.Errorf("unmount %s: %w", slot.Container, err)
	}
	*slot = Slot{Container: slot.Container}

	if err := c.provider.Mount(slot.Container, cfg); err != nil {
		return fmt.Errorf("mount %s in %s: %w", cfg.Kind(), slot.Container, err)
	}

	sym, _ := cfg.Target()
	*slot = Slot{Container: slot.Container, Rendered: true, Symbol: sym, Interval: interval}
	return nil
}

// Slots returns the chart and TA slot states.
func (c *Controller) Slots() (chart, ta Slot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chart, c.ta
}
