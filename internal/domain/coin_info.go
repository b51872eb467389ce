package domain

// CoinInfo is one entry of the quote strip.
// ProviderID is the market-data id, Label is the ticker shown to users.
type CoinInfo struct {
	ProviderID string `json:"id"`
	Label      string `json:"label"`
}

// DefaultCoins is the strip in display order.
var DefaultCoins = []CoinInfo{
	{ProviderID: "bitcoin", Label: "BTC"},
	{ProviderID: "ethereum", Label: "ETH"},
	{ProviderID: "binancecoin", Label: "BNB"},
	{ProviderID: "solana", Label: "SOL"},
	{ProviderID: "ripple", Label: "XRP"},
	{ProviderID: "dogecoin", Label: "DOGE"},
	{ProviderID: "cardano", Label: "ADA"},
	{ProviderID: "litecoin", Label: "LTC"},
	{ProviderID: "avalanche-2", Label: "AVAX"},
}

// ProviderIDs returns the ids of coins in order.
func ProviderIDs(coins []CoinInfo) []string {
	ids := make([]string, 0, len(coins))
	for _, c := range coins {
		ids = append(ids, c.ProviderID)
	}
	return ids
}
