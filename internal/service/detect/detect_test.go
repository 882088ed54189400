package detect

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docbr/docbr/internal/domain/values"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "formatted cpf",
			input: "123.456.789-09",
			want: Result{
				Type:      TypeCPF,
				Valid:     true,
				Formatted: "123.456.789-09",
				State:     "PR/SC",
			},
		},
		{
			name:  "mercosul plate",
			input: "ABC1D23",
			want: Result{
				Type:      TypePlate,
				Valid:     true,
				Formatted: "ABC1D23",
				Mercosul:  true,
			},
		},
		{
			name:  "legacy plate",
			input: "abc-1234",
			want: Result{
				Type:      TypePlate,
				Valid:     true,
				Formatted: "ABC-1234",
			},
		},
		{
			name:  "cnpj",
			input: "11.222.333/0001-81",
			want: Result{
				Type:      TypeCNPJ,
				Valid:     true,
				Formatted: "11.222.333/0001-81",
			},
		},
		{
			name:  "invalid cnpj keeps type tag",
			input: "11.222.333/0001-80",
			want: Result{
				Type:      TypeCNPJ,
				Valid:     false,
				Formatted: "11.222.333/0001-80",
			},
		},
		{
			name:  "voter id",
			input: "123456780127",
			want: Result{
				Type:  TypeVoterID,
				Valid: true,
				State: "SP",
			},
		},
		{
			name:  "cep",
			input: "01310-100",
			want: Result{
				Type:      TypeCEP,
				Valid:     true,
				Formatted: "01310-100",
				State:     "SP",
			},
		},
		{
			name:  "landline phone",
			input: "(11) 3333-4444",
			want: Result{
				Type:      TypePhone,
				Valid:     true,
				Formatted: "(11) 3333-4444",
			},
		},
		{
			name:  "eleven digits falls through to mobile phone",
			input: "11 99876-5432",
			want: Result{
				Type:      TypePhone,
				Valid:     true,
				Formatted: "(11) 99876-5432",
				Mobile:    true,
			},
		},
		{
			name:  "card number",
			input: "4111 1111 1111 1111",
			want: Result{
				Type:      TypeCard,
				Valid:     true,
				Formatted: "4111 1111 1111 1111",
				Brand:     values.BrandVisa,
			},
		},
		{
			name:  "unknown",
			input: "??",
			want:  Result{Type: TypeUnknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.input))
		})
	}
}

func TestDetect_PriorityWithinElevenDigits(t *testing.T) {
	// A valid CPF wins over the CNH and PIS interpretations.
	cpf := values.GenerateCPF()
	got := Detect(cpf.String())
	assert.Equal(t, TypeCPF, got.Type)
	assert.True(t, got.Valid)

	// CNH outranks PIS when both interpretations are possible.
	got = Detect("12345678900")
	assert.Equal(t, TypeCNH, got.Type)
	assert.True(t, got.Valid)

	// A PIS that fails the CPF and CNH checks is tagged as PIS.
	got = Detect("00000001007")
	assert.Equal(t, TypePIS, got.Type)
	assert.True(t, got.Valid)
}

func TestDetect_PlusPrefixSkipsDocumentInterpretation(t *testing.T) {
	got := Detect("+11987654321")
	assert.Equal(t, TypePhone, got.Type)
	assert.True(t, got.Valid)
	assert.True(t, got.Mobile)
}

func TestService_Detect(t *testing.T) {
	svc := NewService(slog.Default())
	got := svc.Detect("123.456.789-09")
	assert.Equal(t, TypeCPF, got.Type)
	assert.True(t, got.Valid)
}
