package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efreport/efreport/internal/model"
)

func TestValidate_Clean(t *testing.T) {
	txns, err := Load("../../testdata/transactions.json")
	require.NoError(t, err)
	assert.Empty(t, Validate(txns))
}

func TestValidate_Problems(t *testing.T) {
	var zero time.Time
	errs := Validate([]model.Transaction{
		{Price: dec("1"), Category: "寄附"},
		{Price: dec("1")},
		{Date: &zero, Price: dec("1"), Category: "雑費"},
	})
	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].Record)
	assert.Equal(t, "record 2: missing category", errs[0].Error())
	assert.Equal(t, 3, errs[1].Record)
}
