package money

import "github.com/leekchan/accounting"

// String formats a price in minor currency units as a fixed two decimal
// major units value without a currency symbol or grouping: 199 -> "1.99",
// 100000 -> "1000.00". FormatNumber takes the separators verbatim, unlike
// the Accounting struct which swaps an empty thousand separator for ",".
func String(cents int64) string {
  return accounting.FormatNumber(float64(cents)/100, 2, "", ".")
}
