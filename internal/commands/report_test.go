package commands_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efreport/efreport/internal/dataset"
	"github.com/efreport/efreport/internal/runlog"
)

func TestReport_Text(t *testing.T) {
	dir := newProject(t, testDataset)

	out, _, err := runEfreport(t, dir, nil, "report")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "選挙運動費用収支報告"))
	assert.Contains(t, out, "￥512,000")
	assert.Contains(t, out, "￥252,580")
	assert.Contains(t, out, "￥259,420")
	assert.Contains(t, out, "支出詳細一覧")
}

func TestReport_JSON(t *testing.T) {
	dir := newProject(t, testDataset)

	out, _, err := runEfreport(t, dir, nil, "report", "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "選挙運動費用収支報告", got["title"])
	assert.Len(t, got["transactions"], 8)
	assert.Len(t, got["income"], 2)
	assert.Len(t, got["expense"], 5)
}

func TestReport_CSVToFile(t *testing.T) {
	dir := newProject(t, testDataset)
	outPath := filepath.Join(dir, "detail.csv")

	stdout, _, err := runEfreport(t, dir, nil, "report", "-f", "csv", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	txns, err := dataset.Load(outPath)
	require.NoError(t, err)
	require.Len(t, txns, 8)
	assert.Equal(t, "2024-10-05", txns[0].DateString())
	assert.False(t, txns[7].HasDate())
}

func TestReport_Record(t *testing.T) {
	dir := newProject(t, testDataset)

	_, _, err := runEfreport(t, dir, nil, "report", "--record")
	require.NoError(t, err)
	_, _, err = runEfreport(t, dir, nil, "report", "--record", "-f", "json")
	require.NoError(t, err)

	entries, err := runlog.Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "report", entries[0].Command)
	assert.Equal(t, 8, entries[0].Transactions)
	assert.Equal(t, "512000", entries[0].Income.String())
	assert.Equal(t, "252580", entries[0].Expense.String())
}

func TestReport_EmptyDataset(t *testing.T) {
	dir := newProject(t, "")

	out, _, err := runEfreport(t, dir, nil, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "￥0")
}

func TestReport_ConfigFlag(t *testing.T) {
	dir := newProject(t, testDataset)
	other := t.TempDir()

	out, _, err := runEfreport(t, other, nil, "report", "--config", filepath.Join(dir, "efreport.yaml"))
	require.NoError(t, err, "dataset resolves relative to the config file")
	assert.Contains(t, out, "￥512,000")
}

func TestReport_MissingConfig(t *testing.T) {
	_, stderr, err := runEfreport(t, t.TempDir(), nil, "report")
	require.Error(t, err)
	assert.Contains(t, stderr, "reading config")
}

func TestReport_MalformedDataset(t *testing.T) {
	dir := newProject(t, "")
	bad := `[{"date":"2024-01-01","price":100,"category":"寄附"},{"date":"2024-01-02","category":"印刷費"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "transactions.json"), []byte(bad), 0o644))

	_, stderr, err := runEfreport(t, dir, nil, "report")
	require.Error(t, err)
	assert.Contains(t, stderr, "record 2: missing price")
}

func TestReport_EnvOverrides(t *testing.T) {
	dir := newProject(t, testDataset)

	out, _, err := runEfreport(t, dir, []string{"EFREPORT_FORMAT=csv"}, "report")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, dataset.Header))
}

func TestReport_DotEnv(t *testing.T) {
	dir := newProject(t, testDataset)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("EFREPORT_FORMAT=json\n"), 0o644))

	out, _, err := runEfreport(t, dir, nil, "report")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestReport_InvalidFormat(t *testing.T) {
	dir := newProject(t, testDataset)

	_, stderr, err := runEfreport(t, dir, []string{"EFREPORT_FORMAT=html"}, "report")
	require.Error(t, err)
	assert.Contains(t, stderr, "output.format")
}

func TestReport_WarnsUnknownCategory(t *testing.T) {
	dir := newProject(t, "")
	data := `[{"date":null,"price":100,"category":"謎費"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "transactions.json"), []byte(data), 0o644))

	out, stderr, err := runEfreport(t, dir, nil, "report")
	require.NoError(t, err)
	assert.Contains(t, stderr, "category not in catalog")
	assert.Contains(t, out, "謎費")
}

func TestReport_Verbose(t *testing.T) {
	dir := newProject(t, testDataset)

	_, stderr, err := runEfreport(t, dir, nil, "report", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "report built")
}
