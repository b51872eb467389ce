// Package symbol translates between chart-vendor tickers, market-data ids
// and the two interval vocabularies used by the chart widgets.
package symbol

import (
	"strings"
)

// DefaultSymbol and DefaultInterval are applied on boot.
const (
	DefaultSymbol   = "BINANCE:BTCUSDT"
	DefaultInterval = "15"
)

var baseToProvider = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"XRP":  "ripple",
	"DOGE": "dogecoin",
	"ADA":  "cardano",
	"LTC":  "litecoin",
	"AVAX": "avalanche-2",
}

// ProviderID maps a vendor symbol such as "BINANCE:BTCUSDT" to its
// market-data id. It reports false for malformed or unknown symbols.
func ProviderID(vendorSymbol string) (string, bool) {
	parts := strings.Split(vendorSymbol, ":")
	if len(parts) < 2 {
		return "", false
	}

	// Only the first occurrence of each suffix is removed.
	base := strings.Replace(parts[1], "USDT", "", 1)
	base = strings.Replace(base, "USD", "", 1)

	id, ok := baseToProvider[strings.ToUpper(base)]
	return id, ok
}

// VendorSymbol builds the Binance USDT pair for a base ticker.
func VendorSymbol(base string) string {
	return "BINANCE:" + strings.ToUpper(base) + "USDT"
}
