package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enrollmentForm struct {
	TaxID    string `validate:"required,cpf"`
	Company  string `validate:"omitempty,cnpj"`
	ZipCode  string `validate:"required,cep"`
	Phone    string `validate:"omitempty,phonebr"`
	AreaCode string `validate:"omitempty,ddd"`
}

func TestNew_RegistersDocumentTags(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	valid := enrollmentForm{
		TaxID:    "123.456.789-09",
		Company:  "11.222.333/0001-81",
		ZipCode:  "01310-100",
		Phone:    "(11) 98765-4321",
		AreaCode: "31",
	}
	assert.NoError(t, v.Struct(valid))
}

func TestStructValidation_Failures(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	tests := []struct {
		name string
		form enrollmentForm
	}{
		{
			name: "bad cpf check digits",
			form: enrollmentForm{TaxID: "123.456.789-00", ZipCode: "01310-100"},
		},
		{
			name: "bad cep length",
			form: enrollmentForm{TaxID: "123.456.789-09", ZipCode: "0131"},
		},
		{
			name: "unknown area code",
			form: enrollmentForm{TaxID: "123.456.789-09", ZipCode: "01310-100", AreaCode: "20"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, v.Struct(tt.form))
		})
	}
}

func TestFieldValidation(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.NoError(t, v.Var("ABC1D23", "platebr"))
	assert.Error(t, v.Var("AB12345", "platebr"))

	assert.NoError(t, v.Var("4111111111111111", "cardnumber"))
	assert.Error(t, v.Var("4111111111111112", "cardnumber"))

	assert.NoError(t, v.Var("12345678900", "cnh"))
	assert.NoError(t, v.Var("123456780127", "voterid"))
	assert.NoError(t, v.Var("123.45678.90-0", "pis"))
}
