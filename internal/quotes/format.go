package quotes

import (
	"strconv"
	"strings"

	"crypto_dash/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	minPriceDigits = 2
	maxPriceDigits = 4
	changeDigits   = 2

	// Placeholder is shown instead of a price when a coin has no quote.
	Placeholder = "—"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders v as US currency with 2 to 4 fraction digits,
// e.g. 43250.5 -> "$43,250.50" and 0.123456 -> "$0.1235".
// Negative values keep their sign even when they round to zero.
func FormatUSD(v decimal.Decimal) (out string) {
	defer func() {
		if r := recover(); r != nil || out == "" {
			out = "$" + v.String()
		}
	}()

	abs := v.Abs().Round(maxPriceDigits)
	fixed := abs.StringFixed(int32(fractionDigits(abs)))

	intPart, frac, _ := strings.Cut(fixed, ".")
	body := groupThousands(intPart) + "." + frac

	if v.Sign() < 0 {
		return "-$" + body
	}
	return "$" + body
}

// groupThousands inserts US thousands separators into a digit string.
// Digits that do not fit an int64 are returned ungrouped.
func groupThousands(digits string) string {
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return digits
	}
	return usPrinter.Sprintf("%d", n)
}

// fractionDigits returns how many fraction digits v needs, clamped to
// [minPriceDigits, maxPriceDigits].
func fractionDigits(v decimal.Decimal) int {
	fixed := v.StringFixed(maxPriceDigits)
	dot := strings.IndexByte(fixed, '.')
	if dot < 0 {
		return minPriceDigits
	}
	n := len(strings.TrimRight(fixed[dot+1:], "0"))
	if n < minPriceDigits {
		return minPriceDigits
	}
	return n
}

// FormatChange renders a 24h percentage change such as "+2.34%".
// A nil change yields an empty string and no direction.
func FormatChange(change *decimal.Decimal) (string, domain.Direction) {
	if change == nil {
		return "", domain.DirectionNone
	}

	text := change.StringFixed(changeDigits)
	if change.Sign() < 0 {
		// -0.001 rounds to "0.00" and keeps its sign
		if !strings.HasPrefix(text, "-") {
			text = "-" + text
		}
		return text + "%", domain.DirectionDown
	}
	return "+" + text + "%", domain.DirectionUp
}
