package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"寄附", 4},
		{"その他の収入", 12},
		{"￥1,000", 7},
		{"2024-10-05", 10},
		{"（カテゴリー別）", 16},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DisplayWidth(tt.in), "DisplayWidth(%q)", tt.in)
	}
}

func TestTable_AlignsWideText(t *testing.T) {
	tbl := NewTable("  ")
	tbl.Row("寄附", "￥300,000")
	tbl.Row("その他の収入", "￥12,000")
	tbl.Row("misc", "￥1")

	var buf bytes.Buffer
	_, err := tbl.WriteTo(&buf)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		col := strings.Index(line, "￥")
		require.GreaterOrEqual(t, col, 0, line)
		assert.Equal(t, 2+12+columnGap, DisplayWidth(line[:col]), "amount column offset in %q", line)
	}
}

func TestTable_LastCellUnpadded(t *testing.T) {
	tbl := NewTable("")
	tbl.Row("a", "long cell")
	tbl.Row("b", "x")

	var buf bytes.Buffer
	_, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "a  long cell\nb  x\n", buf.String())
}

func TestTable_RaggedRows(t *testing.T) {
	tbl := NewTable("")
	tbl.Row("-")
	tbl.Row("交通費", "￥15,000")

	var buf bytes.Buffer
	_, err := tbl.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "-\n交通費  ￥15,000\n", buf.String())
}
