package document

import "github.com/shopspring/decimal"

// FormatCents renders an amount in cents as a decimal currency string with
// two fraction digits. Amounts stay integral up to this point; converting
// through binary floating point is how monetary values grow off-by-one
// cents, so the exponent shift happens in decimal space.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// sumCents totals the amounts of a set of queued payments.
func sumCents(payments []queuedPayment) int64 {
	var total int64
	for _, q := range payments {
		total += q.payment.Amount
	}
	return total
}
