package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docbr/docbr/internal/domain/errors"
)

func TestNewCNPJ(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid formatted",
			input:   "11.222.333/0001-81",
			wantErr: false,
		},
		{
			name:    "valid bare digits",
			input:   "11222333000181",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "1122233300018",
			wantErr: true,
		},
		{
			name:    "wrong check digits",
			input:   "11.222.333/0001-00",
			wantErr: true,
		},
		{
			name:    "repeated digits",
			input:   "11111111111111",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cnpj, err := NewCNPJ(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, onlyDigits(tt.input), cnpj.String())
		})
	}
}

func TestCNPJ_Format(t *testing.T) {
	cnpj := MustNewCNPJ("11222333000181")
	assert.Equal(t, "11.222.333/0001-81", cnpj.Format())
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11.222.333/0001-81"))
}

func TestCNPJ_Branch(t *testing.T) {
	hq := MustNewCNPJ("11.222.333/0001-81")
	assert.Equal(t, 1, hq.Branch())
	assert.True(t, hq.IsHeadquarters())

	branch, err := GenerateCNPJ(42)
	require.NoError(t, err)
	assert.Equal(t, 42, branch.Branch())
	assert.False(t, branch.IsHeadquarters())
}

func TestGenerateCNPJ(t *testing.T) {
	for i := 0; i < 100; i++ {
		cnpj, err := GenerateCNPJ(1)
		require.NoError(t, err)
		assert.True(t, IsValidCNPJ(cnpj.String()), "generated CNPJ %s should validate", cnpj)
		assert.True(t, cnpj.IsHeadquarters())
	}
}

func TestGenerateCNPJ_InvalidBranch(t *testing.T) {
	for _, branch := range []int{0, -1, 10000} {
		_, err := GenerateCNPJ(branch)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	}
}
