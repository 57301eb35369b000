package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireNumber(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"float64", 2.5, 2.5, true},
		{"int", 7, 7, true},
		{"negative int64", int64(-3), -3, true},
		{"uint8", uint8(200), 200, true},
		{"float32", float32(0.5), 0.5, true},
		{"numeric string", "5", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
		{"slice", []any{1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireNumber(tt.input, ErrNotNumber)
			if !tt.ok {
				assert.Same(t, ErrNotNumber, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireNumberAcceptsNonFinite(t *testing.T) {
	n, err := RequireNumber(math.NaN(), ErrNotNumber)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(n))

	n, err = RequireNumber(math.Inf(-1), ErrNotNumber)
	require.NoError(t, err)
	assert.True(t, math.IsInf(n, -1))
}

func TestRequireNumbers(t *testing.T) {
	a, b, err := RequireNumbers(1, 2.5, ErrNotNumbers)
	require.NoError(t, err)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 2.5, b)

	_, _, err = RequireNumbers("1", 2, ErrNotNumbers)
	assert.Same(t, ErrNotNumbers, err)
	_, _, err = RequireNumbers(1, nil, ErrNotNumbers)
	assert.Same(t, ErrNotNumbers, err)
}

func TestRequireText(t *testing.T) {
	s, err := RequireText("hello", ErrNotString)
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = RequireText("", ErrNotString)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	_, err = RequireText(123, ErrNotString)
	assert.Same(t, ErrNotString, err)
	_, err = RequireText(nil, ErrNotString)
	assert.Same(t, ErrNotString, err)
}

func TestRequireBool(t *testing.T) {
	b, err := RequireBool(false, ErrInvalidPayload)
	require.NoError(t, err)
	assert.False(t, b)

	_, err = RequireBool("true", ErrInvalidPayload)
	assert.Same(t, ErrInvalidPayload, err)
}

func TestRequireSequence(t *testing.T) {
	seq, err := RequireSequence([]any{1, "a"}, ErrNotArray)
	require.NoError(t, err)
	assert.Equal(t, []any{1, "a"}, seq)

	seq, err = RequireSequence([]int{3, 1}, ErrNotArray)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 1}, seq)

	seq, err = RequireSequence([2]string{"x", "y"}, ErrNotArray)
	require.NoError(t, err)
	assert.Equal(t, []any{"x", "y"}, seq)

	seq, err = RequireSequence([]string(nil), ErrNotArray)
	require.NoError(t, err)
	assert.Empty(t, seq)

	for _, bad := range []any{"abc", 12, nil, map[string]any{"a": 1}} {
		_, err := RequireSequence(bad, ErrNotArray)
		assert.Same(t, ErrNotArray, err, "input %#v", bad)
	}
}

func TestRequireNumericSequence(t *testing.T) {
	values, err := RequireNumericSequence([]any{1.0, 2, int64(3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)

	_, err = RequireNumericSequence("1,2,3")
	assert.Same(t, ErrNotArray, err)

	_, err = RequireNumericSequence([]any{})
	assert.Same(t, ErrEmptyArray, err)

	_, err = RequireNumericSequence([]any{1, 2, "x"})
	assert.Same(t, ErrNonNumericElement, err)
}
