package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const yenSign = "￥"

// FormatCurrency renders amount as Japanese yen with no fractional digits,
// e.g. ￥50,000 or -￥30,000. Fractions are rounded half away from zero.
func FormatCurrency(amount decimal.Decimal) string {
	whole := amount.Round(0)
	sign := ""
	if whole.IsNegative() {
		sign = "-"
		whole = whole.Abs()
	}

	n := whole.BigInt()
	if !n.IsInt64() {
		return sign + yenSign + groupThousands(n.String())
	}
	// message.Printer is not shared: it keeps per-call formatting state.
	p := message.NewPrinter(language.Japanese)
	return sign + yenSign + p.Sprintf("%d", n.Int64())
}

// groupThousands inserts the ja-JP group separator into a string of digits.
func groupThousands(digits string) string {
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
