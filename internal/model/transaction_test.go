package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, d.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("2024/02/29")
	assert.Error(t, err)
}

func TestTransactionDateString(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-05", Transaction{Date: d}.DateString())
	assert.True(t, Transaction{Date: d}.HasDate())

	assert.Equal(t, "", Transaction{}.DateString())
	assert.False(t, Transaction{}.HasDate())
}
