package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCNH(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid",
			input:   "12345678900",
			wantErr: false,
		},
		{
			name:    "valid with first-digit carry",
			input:   "99000000003",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "1234567890",
			wantErr: true,
		},
		{
			name:    "wrong check digits",
			input:   "12345678911",
			wantErr: true,
		},
		{
			name:    "repeated digits",
			input:   "11111111111",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cnh, err := NewCNH(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input, cnh.String())
		})
	}
}

func TestCNH_Categories(t *testing.T) {
	require.Contains(t, CNHCategories, "AB")
	assert.Len(t, CNHCategories, 9)
}
