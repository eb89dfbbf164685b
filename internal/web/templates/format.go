package templates

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// cryptoMinorUnits is the divisor between the backend's integer crypto
// amounts and their display value.
const cryptoMinorUnits = 1_000_000

var groupedPrinter = message.NewPrinter(language.English)

// FormatCryptoAmount renders a backend minor-unit amount string to two
// decimals. The backend string stays authoritative; a value that does not
// parse is shown verbatim rather than as zero.
func FormatCryptoAmount(minorUnits string) string {
	minorUnits = strings.TrimSpace(minorUnits)
	n, err := strconv.ParseFloat(minorUnits, 64)
	if err != nil {
		return minorUnits
	}
	return fmt.Sprintf("%.2f", n/cryptoMinorUnits)
}

// FormatBalance renders a crypto balance string to two decimals, empty in
// stays empty out.
func FormatBalance(balance string) string {
	balance = strings.TrimSpace(balance)
	if balance == "" {
		return ""
	}
	n, err := strconv.ParseFloat(balance, 64)
	if err != nil {
		return balance
	}
	return fmt.Sprintf("%.2f", n)
}

// FormatAmount renders a payment amount to two decimals with its currency
// code.
func FormatAmount(amount float64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// FormatGrouped renders an integer with en-US digit grouping, used for the
// IRT preset labels.
func FormatGrouped(n int) string {
	return groupedPrinter.Sprintf("%d", n)
}
