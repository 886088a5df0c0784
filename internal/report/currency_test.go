package report

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "￥0"},
		{"5", "￥5"},
		{"999", "￥999"},
		{"1000", "￥1,000"},
		{"50000", "￥50,000"},
		{"1234567", "￥1,234,567"},
		{"-30000", "-￥30,000"},
		{"-1", "-￥1"},
		{"1500.5", "￥1,501"},
		{"-0.4", "￥0"},
		{"9223372036854775807", "￥9,223,372,036,854,775,807"},
		{"10000000000000000000", "￥10,000,000,000,000,000,000"},
		{"-10000000000000000000", "-￥10,000,000,000,000,000,000"},
		{"123456789012345678901234.5", "￥123,456,789,012,345,678,901,235"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(dec(tt.amount)), "FormatCurrency(%s)", tt.amount)
	}
}

func TestGroupThousands_MatchesPrinter(t *testing.T) {
	for _, n := range []int64{0, 7, 42, 999, 1000, 65536, 999999, 1000000, 9223372036854775807} {
		digits := strconv.FormatInt(n, 10)
		assert.Equal(t, FormatCurrency(dec(digits)), yenSign+groupThousands(digits), "n=%d", n)
	}
}
