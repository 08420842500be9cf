// Package money formats whole-dong amounts for user-facing messages.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Vietnamese)

// Format renders 150000 as "150.000 ₫".
func Format(amount int64) string {
	return printer.Sprintf("%d ₫", amount)
}
