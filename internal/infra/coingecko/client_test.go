package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crypto_dash/internal/infra"
)

const marketsBody = `[
	{"id":"bitcoin","symbol":"btc","current_price":43250.5,"price_change_percentage_24h":2.34,"image":"https://img/btc.png"},
	{"id":"ethereum","symbol":"eth","current_price":2300.1,"price_change_percentage_24h":null,"image":null},
	{"id":"solana","symbol":"sol","current_price":null,"price_change_percentage_24h":-1.1,"image":"https://img/sol.png"}
]`

func TestClient_FetchMarkets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/markets" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("vs_currency") != "usd" {
			t.Errorf("vs_currency = %q", q.Get("vs_currency"))
		}
		if q.Get("ids") != "bitcoin,ethereum,solana" {
			t.Errorf("ids = %q", q.Get("ids"))
		}
		if q.Get("price_change_percentage") != "24h" {
			t.Errorf("price_change_percentage = %q", q.Get("price_change_percentage"))
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %q", r.Header.Get("Accept"))
		}
		if ua := r.Header.Get("User-Agent"); ua != infra.GetUserAgent() {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(marketsBody))
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", time.Second)
	records, err := c.FetchMarkets(context.Background(), []string{"bitcoin", "ethereum", "solana"})
	if err != nil {
		t.Fatalf("FetchMarkets failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	btc := records[0]
	if !btc.HasPrice || btc.CurrentPrice.String() != "43250.5" {
		t.Errorf("btc price = %s (has=%v)", btc.CurrentPrice, btc.HasPrice)
	}
	if btc.PriceChange24h == nil || btc.PriceChange24h.String() != "2.34" {
		t.Errorf("btc change = %v", btc.PriceChange24h)
	}
	if btc.Image != "https://img/btc.png" {
		t.Errorf("btc image = %q", btc.Image)
	}

	eth := records[1]
	if eth.PriceChange24h != nil || eth.Image != "" {
		t.Errorf("eth nulls not preserved: %+v", eth)
	}

	if records[2].HasPrice {
		t.Error("solana has a null price and must not report HasPrice")
	}
}

func TestClient_FetchMarkets_Errors(t *testing.T) {
	t.Run("Non-2xx", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).FetchMarkets(context.Background(), []string{"bitcoin"})
		if !errors.Is(err, ErrHTTPStatus) {
			t.Errorf("expected ErrHTTPStatus, got %v", err)
		}
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"not":"an array"`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).FetchMarkets(context.Background(), []string{"bitcoin"})
		if err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("Network", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewClient(url, time.Second).FetchMarkets(context.Background(), []string{"bitcoin"})
		if err == nil {
			t.Error("expected network error")
		}
	})
}
