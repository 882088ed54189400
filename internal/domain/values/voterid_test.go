package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVoterID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "valid sao paulo registration",
			input:   "123456780127",
			wantErr: false,
		},
		{
			name:    "valid registration abroad",
			input:   "000000002800",
			wantErr: false,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "wrong length",
			input:   "12345678012",
			wantErr: true,
		},
		{
			name:    "wrong check digits",
			input:   "123456780100",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := NewVoterID(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, onlyDigits(tt.input), id.String())
		})
	}
}

func TestVoterID_State(t *testing.T) {
	assert.Equal(t, "SP", MustNewVoterID("123456780127").State())
	assert.Equal(t, "ZZ", MustNewVoterID("000000002800").State())
}

func TestVoterIDState(t *testing.T) {
	uf, ok := VoterIDState("123456780127")
	require.True(t, ok)
	assert.Equal(t, "SP", uf)

	// State lookup does not verify check digits.
	uf, ok = VoterIDState("123456780199")
	require.True(t, ok)
	assert.Equal(t, "SP", uf)

	_, ok = VoterIDState("123456789900")
	assert.False(t, ok)

	_, ok = VoterIDState("123")
	assert.False(t, ok)
}
