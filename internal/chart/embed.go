package chart

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// TAScriptURL is the vendor script that renders the technical-analysis panel.
const TAScriptURL = "https://s3.tradingview.com/external-embedding/embed-widget-technical-analysis.js"

// Embed tells the page how to instantiate one widget.
// Chart embeds are passed to the vendor constructor; TA embeds become a
// script tag pointing at ScriptURL with Config as its body.
type Embed struct {
	Kind      Kind   `json:"kind"`
	Container string `json:"container"`
	ScriptURL string `json:"script_url,omitempty"`
	Config    string `json:"config"`
	Version   uint64 `json:"version"`
}

// EmbedProvider keeps the current embed per container for the web view.
type EmbedProvider struct {
	mu      sync.RWMutex
	embeds  map[string]Embed
	version uint64
}

// NewEmbedProvider creates a provider with no widgets mounted.
func NewEmbedProvider() *EmbedProvider {
	return &EmbedProvider{embeds: make(map[string]Embed)}
}

func (p *EmbedProvider) Mount(container string, cfg WidgetConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode %s config: %w", cfg.Kind(), err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.embeds[container]; ok {
		return ErrContainerBusy
	}

	p.version++
	e := Embed{Kind: cfg.Kind(), Container: container, Config: string(raw), Version: p.version}
	if cfg.Kind() == KindTA {
		e.ScriptURL = TAScriptURL
	}
	p.embeds[container] = e
	return nil
}

func (p *EmbedProvider) Unmount(container string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.embeds, container)
	return nil
}

// Embed returns the widget mounted in container.
func (p *EmbedProvider) Embed(container string) (Embed, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	e, ok := p.embeds[container]
	return e, ok
}

// Embeds returns all mounted widgets ordered by container name.
func (p *EmbedProvider) Embeds() []Embed {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Embed, 0, len(p.embeds))
	for _, e := range p.embeds {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Container < out[j].Container })
	return out
}
