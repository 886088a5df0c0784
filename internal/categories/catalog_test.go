package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/efreport/efreport/internal/model"
	"github.com/efreport/efreport/internal/report"
)

func TestDefault_Size(t *testing.T) {
	assert.Len(t, Default().All(), 12)
}

func TestDefault_KindsMatchClassifier(t *testing.T) {
	for _, e := range Default().All() {
		assert.Equal(t, e.Kind, report.Classify(e.Name), "catalog kind for %s", e.Name)
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	e, ok := c.Lookup("印刷費")
	require.True(t, ok)
	assert.Equal(t, model.KindExpense, e.Kind)

	_, ok = c.Lookup("選挙費")
	assert.False(t, ok)
}

func TestUnknown(t *testing.T) {
	c := Default()
	got := c.Unknown([]string{"寄附", "謎費", "印刷費", "謎費", "other"})
	assert.Equal(t, []string{"謎費", "other"}, got)
	assert.Nil(t, c.Unknown([]string{"寄附"}))
}
