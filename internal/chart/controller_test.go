package chart

import (
	"errors"
	"testing"
)

func TestController_RenderTearsDownAndRecreates(t *testing.T) {
	rec := NewRecordingProvider()
	c := NewController(rec, DefaultOptions())

	if err := c.Render("BINANCE:BTCUSDT", "15"); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := c.Render("BINANCE:ETHUSDT", "15"); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	calls := rec.Calls()
	want := []struct{ op, container string }{
		{"unmount", "tv_chart"}, {"mount", "tv_chart"},
		{"unmount", "tv_ta"}, {"mount", "tv_ta"},
		{"unmount", "tv_chart"}, {"mount", "tv_chart"},
		{"unmount", "tv_ta"}, {"mount", "tv_ta"},
	}
	if len(calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %+v", len(want), len(calls), calls)
	}
	for i, w := range want {
		if calls[i].Op != w.op || calls[i].Container != w.container {
			t.Errorf("call %d = %s %s, want %s %s", i, calls[i].Op, calls[i].Container, w.op, w.container)
		}
	}

	chartCfg, ok := calls[5].Config.(ChartConfig)
	if !ok {
		t.Fatalf("expected ChartConfig, got %T", calls[5].Config)
	}
	if chartCfg.Symbol != "BINANCE:ETHUSDT" || chartCfg.Interval != "15" || chartCfg.ContainerID != "tv_chart" {
		t.Errorf("unexpected chart config %+v", chartCfg)
	}

	taCfg, ok := calls[7].Config.(TAConfig)
	if !ok {
		t.Fatalf("expected TAConfig, got %T", calls[7].Config)
	}
	if taCfg.Symbol != "BINANCE:ETHUSDT" || taCfg.Interval != "15m" {
		t.Errorf("unexpected TA config %+v", taCfg)
	}

	chart, ta := c.Slots()
	if !chart.Rendered || !ta.Rendered {
		t.Fatal("both slots should be rendered")
	}
	if ta.Interval != "15" || ta.Symbol != "BINANCE:ETHUSDT" {
		t.Errorf("TA slot = %+v", ta)
	}
}

func TestController_MountFailureLeavesSlotAbsent(t *testing.T) {
	boom := errors.New("vendor script blocked")
	rec := NewRecordingProvider()
	rec.FailMount = map[string]error{"tv_ta": boom}
	c := NewController(rec, DefaultOptions())

	err := c.Render("BINANCE:BTCUSDT", "D")
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined mount error, got %v", err)
	}

	chart, ta := c.Slots()
	if !chart.Rendered {
		t.Error("chart slot should still render")
	}
	if ta.Rendered {
		t.Error("TA slot must be absent after a failed mount")
	}
}

func TestController_InitialSlotsAbsent(t *testing.T) {
	c := NewController(NewRecordingProvider(), DefaultOptions())
	chart, ta := c.Slots()
	if chart.Rendered || ta.Rendered {
		t.Error("slots must start absent")
	}
	if chart.Container != "tv_chart" || ta.Container != "tv_ta" {
		t.Errorf("unexpected containers %q %q", chart.Container, ta.Container)
	}
}
