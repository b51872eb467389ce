package symbol

import "crypto_dash/internal/domain"

// Symbols returns selector entries for coins, one Binance USDT pair each.
func Symbols(coins []domain.CoinInfo) []Option {
	opts := make([]Option, 0, len(coins))
	for _, c := range coins {
		opts = append(opts, Option{Value: VendorSymbol(c.Label), Label: c.Label + "/USDT"})
	}
	return opts
}
