package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenominationSet(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		values []int

		expectedValues []int
		expectErr      bool
	}

	tests := []testCase{
		{
			name:           "standard coin set",
			values:         []int{100, 5, 50, 10, 20},
			expectedValues: []int{5, 10, 20, 50, 100},
			expectErr:      false,
		},
		{
			name:           "single coin",
			values:         []int{1},
			expectedValues: []int{1},
			expectErr:      false,
		},
		{
			name:      "empty set",
			values:    []int{},
			expectErr: true,
		},
		{
			name:      "non-positive coin",
			values:    []int{0, 5, 10},
			expectErr: true,
		},
		{
			name:      "negative coin",
			values:    []int{-5, 10},
			expectErr: true,
		},
		{
			name:      "duplicate coin",
			values:    []int{5, 10, 10},
			expectErr: true,
		},
		{
			name:      "coin not a multiple of the smallest",
			values:    []int{5, 12, 20},
			expectErr: true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := NewDenominationSet(tt.values)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedValues, set.Values())
			assert.Equal(t, tt.expectedValues[0], set.Smallest())
		})
	}
}

func TestDenominationSet_Contains(t *testing.T) {
	t.Parallel()

	set, err := NewDenominationSet([]int{5, 10, 20, 50, 100})
	require.NoError(t, err)

	assert.True(t, set.Contains(5))
	assert.True(t, set.Contains(100))
	assert.False(t, set.Contains(1))
	assert.False(t, set.Contains(25))
	assert.False(t, set.Contains(0))
}
