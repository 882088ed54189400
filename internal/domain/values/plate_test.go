package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlate(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantErr      bool
		wantMercosul bool
	}{
		{
			name:         "legacy format",
			input:        "ABC1234",
			wantMercosul: false,
		},
		{
			name:         "legacy with dash",
			input:        "ABC-1234",
			wantMercosul: false,
		},
		{
			name:         "mercosul format",
			input:        "ABC1D23",
			wantMercosul: true,
		},
		{
			name:         "lowercase input",
			input:        "abc1d23",
			wantMercosul: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "AB1234",
			wantErr: true,
		},
		{
			name:    "digit in letter block",
			input:   "1BC1D23",
			wantErr: true,
		},
		{
			name:    "letter in final digits",
			input:   "ABC1D2E",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plate, err := NewPlate(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMercosul, plate.IsMercosul())
		})
	}
}

func TestPlate_Format(t *testing.T) {
	legacy := MustNewPlate("abc1234")
	assert.Equal(t, "ABC-1234", legacy.Format())

	mercosul := MustNewPlate("ABC1D23")
	assert.Equal(t, "ABC1D23", mercosul.Format())

	assert.Equal(t, "ABC-1234", FormatPlate("ABC-1234"))
}

func TestGeneratePlate(t *testing.T) {
	for i := 0; i < 50; i++ {
		mercosul := GeneratePlate(PlateGenOptions{})
		assert.True(t, IsValidPlate(mercosul.String()))
		assert.True(t, mercosul.IsMercosul())

		legacy := GeneratePlate(PlateGenOptions{Legacy: true})
		assert.True(t, IsValidPlate(legacy.String()))
		assert.False(t, legacy.IsMercosul())
	}
}
