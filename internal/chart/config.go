package chart

import "crypto_dash/internal/symbol"

// ChartConfig holds the options understood by the vendor chart constructor.
type ChartConfig struct {
	Autosize          bool   `json:"autosize"`
	Symbol            string `json:"symbol"`
	Interval          string `json:"interval"`
	Timezone          string `json:"timezone"`
	Theme             string `json:"theme"`
	Style             string `json:"style"`
	Locale            string `json:"locale"`
	ToolbarBg         string `json:"toolbar_bg"`
	EnablePublishing  bool   `json:"enable_publishing"`
	WithDateRanges    bool   `json:"withdateranges"`
	HideSideToolbar   bool   `json:"hide_side_toolbar"`
	AllowSymbolChange bool   `json:"allow_symbol_change"`
	ContainerID       string `json:"container_id"`
}

func (ChartConfig) Kind() Kind { return KindChart }

func (c ChartConfig) Target() (string, string) { return c.Symbol, c.Interval }

// TAConfig is the JSON embedded in the technical-analysis script tag.
// Interval uses the TA vocabulary ("15m", "1D"), not chart codes.
type TAConfig struct {
	Interval         string `json:"interval"`
	Width            string `json:"width"`
	IsTransparent    bool   `json:"isTransparent"`
	Height           string `json:"height"`
	Symbol           string `json:"symbol"`
	ShowIntervalTabs bool   `json:"showIntervalTabs"`
	DisplayMode      string `json:"displayMode"`
	ColorTheme       string `json:"colorTheme"`
	Locale           string `json:"locale"`
}

func (TAConfig) Kind() Kind { return KindTA }

func (c TAConfig) Target() (string, string) { return c.Symbol, c.Interval }

// Options are the look-and-feel settings shared by both widgets.
type Options struct {
	Locale         string
	Theme          string
	ChartContainer string
	TAContainer    string
}

// DefaultOptions match the dark theme of the page.
func DefaultOptions() Options {
	return Options{
		Locale:         "br",
		Theme:          "dark",
		ChartContainer: "tv_chart",
		TAContainer:    "tv_ta",
	}
}

// NewChartConfig builds the price chart configuration.
func NewChartConfig(opts Options, sym, interval string) ChartConfig {
	return ChartConfig{
		Autosize:          true,
		Symbol:            sym,
		Interval:          interval,
		Timezone:          "Etc/UTC",
		Theme:             opts.Theme,
		Style:             "1",
		Locale:            opts.Locale,
		ToolbarBg:         "#131722",
		EnablePublishing:  false,
		WithDateRanges:    true,
		HideSideToolbar:   false,
		AllowSymbolChange: true,
		ContainerID:       opts.ChartContainer,
	}
}

// NewTAConfig builds the technical-analysis configuration for a chart
// interval code.
func NewTAConfig(opts Options, sym, interval string) TAConfig {
	return TAConfig{
		Interval:         symbol.TAInterval(interval),
		Width:            "100%",
		IsTransparent:    true,
		Height:           "100%",
		Symbol:           sym,
		ShowIntervalTabs: true,
		DisplayMode:      "single",
		ColorTheme:       opts.Theme,
		Locale:           opts.Locale,
	}
}
