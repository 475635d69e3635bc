package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_FlatClause(t *testing.T) {
	got, err := Where(FieldIsLearned, true).Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"userWord.optional.isLearned":true}`, got)
}

func TestFilter_AndClause(t *testing.T) {
	f := And(Where(FieldDateLearned, "2026-08-28").Where(FieldIsLearned, true))

	got, err := f.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"$and":[{"userWord.optional.dateLearned":"2026-08-28","userWord.optional.isLearned":true}]}`, got)
}

func TestFilter_Zero(t *testing.T) {
	var f Filter
	assert.True(t, f.IsZero())

	got, err := f.Encode()
	require.NoError(t, err)
	assert.Equal(t, "{}", got)

	assert.False(t, Where(FieldIsLearned, false).IsZero())
}

func TestFilter_WhereIsImmutable(t *testing.T) {
	base := Where(FieldIsLearned, true)
	extended := base.Where(FieldDateLearned, "2026-08-28")

	gotBase, err := base.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"userWord.optional.isLearned":true}`, gotBase)

	gotExtended, err := extended.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"userWord.optional.isLearned":true,"userWord.optional.dateLearned":"2026-08-28"}`, gotExtended)
}
