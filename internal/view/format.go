package view

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formats amounts for display.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter returns a Formatter for the language. Amounts are suffixed
// with the currency symbol.
func NewFormatter(tag language.Tag, symbol string) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// DefaultFormatter formats amounts in German with Euro as currency.
func DefaultFormatter() *Formatter {
	return NewFormatter(language.German, "€")
}

// Money formats an amount with two decimal places and the currency symbol.
// Only the decimal separator is localized, thousands are not grouped.
func (f *Formatter) Money(d decimal.Decimal) string {
	amount := number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2), number.NoSeparator())
	return f.printer.Sprintf("%v %s", amount, f.symbol)
}
