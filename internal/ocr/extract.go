package ocr

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

// AllowedPatterns are the file name patterns accepted for receipts.
var AllowedPatterns = []string{"*.png", "*.jpg", "*.jpeg"}

// storeNameLines is the number of lines at the top of a receipt that are
// searched for the store name.
const storeNameLines = 5

var amountPattern = regexp.MustCompile(`\d+[.,]\d{2}`)

// AllowedFile reports if the file name has an accepted image extension.
// The check is case insensitive.
func AllowedFile(filename string) bool {
	name := strings.ToLower(filename)
	for _, pattern := range AllowedPatterns {
		if glob.Glob(pattern, name) {
			return true
		}
	}

	return false
}

// ExtractAmount returns the last amount with two decimal places in the text.
// On receipts, this is usually the total. A total of zero is not an amount.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	matches := amountPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(matches[len(matches)-1], ",", "."))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, false
	}

	return amount, true
}

// ExtractStoreName returns the first non-empty line without digits among the
// first lines of the text.
func ExtractStoreName(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) > storeNameLines {
		lines = lines[:storeNameLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && strings.IndexFunc(line, unicode.IsDigit) < 0 {
			return line
		}
	}

	return ""
}
