package domain

// Direction classifies a 24h change for styling.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionNone Direction = ""
)

// QuoteView is a formatted entry of the quote strip.
type QuoteView struct {
	Label     string    `json:"label"`
	LogoURL   string    `json:"logo,omitempty"`
	Price     string    `json:"price"`
	Change    string    `json:"change"`
	Direction Direction `json:"direction"`
}

// Badge shows price and 24h change for the selected symbol.
type Badge struct {
	Text      string    `json:"text"`
	Direction Direction `json:"direction"`
}

// Selection is the state of the two selectors.
type Selection struct {
	Symbol   string `json:"symbol"`
	Interval string `json:"interval"`
}
