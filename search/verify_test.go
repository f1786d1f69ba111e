package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arith24/search"
)

// eightThirds is 8 / (3 - 8/3) with every token rounded to nine places.
var eightThirds = search.Trace{
	"8", "3", "2.666666667", "/",
	"3", "2.666666667", "0.333333333", "-",
	"8", "0.333333333", "24", "/",
}

func TestVerify_SearchTraces(t *testing.T) {
	for _, values := range [][]float64{{4, 1, 8, 7}, {2, 2, 10, 10}, {3, 3, 8, 8}, {1, 5, 5, 5}} {
		all, err := search.FindAll(values, 24)
		require.NoError(t, err)
		require.NotEmpty(t, all)
		for _, tr := range all {
			assert.NoError(t, search.Verify(values, tr, 24), "values %v trace %v", values, tr)
		}
	}
}

func TestVerify_RoundedSubmission(t *testing.T) {
	assert.NoError(t, search.Verify([]float64{3, 3, 8, 8}, eightThirds, 24))
	assert.NoError(t, search.Verify([]float64{8, 3, 8, 3}, eightThirds, 24), "input order is irrelevant")
}

func TestVerify_SingleValue(t *testing.T) {
	assert.NoError(t, search.Verify([]float64{24}, search.Trace{}, 24))
	assert.ErrorIs(t, search.Verify([]float64{23}, search.Trace{}, 24), search.ErrTargetMissed)
}

func TestVerify_Errors(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		trace  search.Trace
		want   error
	}{
		{
			name:   "empty values",
			values: nil,
			trace:  search.Trace{},
			want:   search.ErrEmptyInput,
		},
		{
			name:   "token count",
			values: []float64{1, 2},
			trace:  search.Trace{"1", "2", "3"},
			want:   search.ErrMalformedTrace,
		},
		{
			name:   "unknown operator",
			values: []float64{1, 2},
			trace:  search.Trace{"1", "2", "3", "%"},
			want:   search.ErrMalformedTrace,
		},
		{
			name:   "bad number",
			values: []float64{1, 2},
			trace:  search.Trace{"one", "2", "3", "+"},
			want:   search.ErrMalformedTrace,
		},
		{
			name:   "operand not in play",
			values: []float64{1, 2, 3, 4},
			trace:  search.Trace{"5", "2", "7", "+", "7", "3", "21", "*", "21", "4", "25", "+"},
			want:   search.ErrOperandUnavailable,
		},
		{
			name:   "operand used twice",
			values: []float64{6, 4, 1, 1},
			trace:  search.Trace{"6", "6", "36", "+"},
			want:   search.ErrOperandUnavailable,
		},
		{
			name:   "wrong result",
			values: []float64{4, 1, 8, 7},
			trace:  search.Trace{"7", "4", "4", "-", "8", "4", "32", "*", "32", "1", "32", "*"},
			want:   search.ErrResultMismatch,
		},
		{
			name:   "values left over",
			values: []float64{4, 6, 1, 1},
			trace:  search.Trace{"4", "6", "24", "*"},
			want:   search.ErrIncompleteTrace,
		},
		{
			name:   "too many steps",
			values: []float64{4, 6},
			trace:  search.Trace{"4", "6", "24", "*", "24", "1", "24", "*"},
			want:   search.ErrIncompleteTrace,
		},
		{
			name:   "misses target",
			values: []float64{4, 6},
			trace:  search.Trace{"4", "6", "10", "+"},
			want:   search.ErrTargetMissed,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, search.Verify(tc.values, tc.trace, 24), tc.want)
		})
	}
}

func TestExpression(t *testing.T) {
	tr, ok, err := search.FindFirst([]float64{2, 2, 10, 10}, 24)
	require.NoError(t, err)
	require.True(t, ok)

	expr, err := search.Expression([]float64{2, 2, 10, 10}, tr)
	require.NoError(t, err)
	assert.Equal(t, "(2 + 2) + (10 + 10)", expr)

	expr, err = search.Expression([]float64{3, 3, 8, 8}, eightThirds)
	require.NoError(t, err)
	assert.Equal(t, "8 / (3 - (8 / 3))", expr)

	expr, err = search.Expression([]float64{2, 5}, search.Trace{"5", "2", "3", "-"})
	require.NoError(t, err)
	assert.Equal(t, "5 - 2", expr)

	expr, err = search.Expression([]float64{24}, search.Trace{})
	require.NoError(t, err)
	assert.Equal(t, "24", expr)
}

func TestExpression_Errors(t *testing.T) {
	_, err := search.Expression([]float64{1, 2, 3}, search.Trace{"1", "2", "3", "+"})
	assert.ErrorIs(t, err, search.ErrIncompleteTrace)

	_, err = search.Expression(nil, search.Trace{})
	assert.ErrorIs(t, err, search.ErrEmptyInput)
}
