package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiredFields(t *testing.T) {
	type request struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	require.Error(t, Validate(request{}))
	require.Error(t, Validate(request{Name: "Maria", Email: "nao-email"}))
	require.NoError(t, Validate(request{Name: "Maria", Email: "maria@example.com"}))
}

func TestValidateCPF(t *testing.T) {
	assert.True(t, ValidateCPF("529.982.247-25"))
	assert.True(t, ValidateCPF("52998224725"))
	assert.False(t, ValidateCPF("111.111.111-11"))
	assert.False(t, ValidateCPF("52998224724"))
	assert.False(t, ValidateCPF("123"))
}

func TestValidateCNPJ(t *testing.T) {
	assert.True(t, ValidateCNPJ("11.444.777/0001-61"))
	assert.True(t, ValidateCNPJ("11444777000161"))
	assert.False(t, ValidateCNPJ("11.111.111/1111-11"))
	assert.False(t, ValidateCNPJ("11444777000162"))
	assert.False(t, ValidateCNPJ("123"))
}

func TestValidateCpfCnpj(t *testing.T) {
	assert.True(t, ValidateCpfCnpj("529.982.247-25"))
	assert.True(t, ValidateCpfCnpj("11.444.777/0001-61"))
	assert.False(t, ValidateCpfCnpj("12345"))
	assert.False(t, ValidateCpfCnpj(""))
}

func TestValidatePhone(t *testing.T) {
	assert.True(t, ValidatePhone("(11) 98765-4321"))
	assert.True(t, ValidatePhone("11987654321"))
	assert.False(t, ValidatePhone("abc"))
}
