package quiz

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateID(t *testing.T) {
	seven := "7"
	tests := []struct {
		name    string
		raw     any
		want    int
		wantErr error
	}{
		{"absent", nil, 0, ErrMissingParameter},
		{"nil string pointer", (*string)(nil), 0, ErrMissingParameter},
		{"letters", "abc", 0, ErrNotANumber},
		{"empty string", "", 0, ErrNotANumber},
		{"only sign", "-", 0, ErrNotANumber},
		{"numeric string", "7", 7, nil},
		{"string pointer", &seven, 7, nil},
		{"int", 7, 7, nil},
		{"int64", int64(12), 12, nil},
		{"uint8", uint8(3), 3, nil},
		{"leading spaces and trailing garbage", "  12abc", 12, nil},
		{"decimal string", "3.9", 3, nil},
		{"negative", "-3", -3, nil},
		{"plus sign", "+5", 5, nil},
		{"float", 4.7, 4, nil},
		{"NaN", math.NaN(), 0, ErrNotANumber},
		{"overflow", "99999999999999999999999", 0, ErrNotANumber},
		{"other type", []int{1}, 0, ErrNotANumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateID(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
