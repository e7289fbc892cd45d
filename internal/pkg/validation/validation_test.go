package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFullName(t *testing.T) {
	assert.True(t, IsValidFullName("John Doe"))
	assert.True(t, IsValidFullName("A"))
	assert.False(t, IsValidFullName(""))
	assert.False(t, IsValidFullName("John Doe 2"))
	assert.False(t, IsValidFullName("John-Doe"))
	assert.False(t, IsValidFullName("Ab Cd Ef Gh Ij Kl Mn Op Qr St Uv Wx Yz Ab Cd Ef G"))
}

func TestIsValidIDNumber(t *testing.T) {
	assert.True(t, IsValidIDNumber("123456"))
	assert.True(t, IsValidIDNumber("12345678901234567890"))
	assert.False(t, IsValidIDNumber("12345"))
	assert.False(t, IsValidIDNumber("123456789012345678901"))
	assert.False(t, IsValidIDNumber("12345a"))
	assert.False(t, IsValidIDNumber(""))
}

func TestIsValidAccountNumber(t *testing.T) {
	assert.True(t, IsValidAccountNumber("4000123456"))
	assert.False(t, IsValidAccountNumber("4000-1234"))
	assert.False(t, IsValidAccountNumber("40001"))
}

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("john_doe"))
	assert.True(t, IsValidUsername("abc"))
	assert.True(t, IsValidUsername("User123"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("john.doe"))
	assert.False(t, IsValidUsername("john doe"))
	assert.False(t, IsValidUsername("abcdefghijklmnopqrstu"))
}

func TestIsValidAmount(t *testing.T) {
	assert.True(t, IsValidAmount("100"))
	assert.True(t, IsValidAmount("0.5"))
	assert.True(t, IsValidAmount("12.34"))
	assert.False(t, IsValidAmount("12.345"))
	assert.False(t, IsValidAmount(".50"))
	assert.False(t, IsValidAmount("12."))
	assert.False(t, IsValidAmount("-5"))
	assert.False(t, IsValidAmount("1,000"))
	assert.False(t, IsValidAmount(""))
}

func TestIsValidCurrency(t *testing.T) {
	assert.True(t, IsValidCurrency("USD"))
	assert.True(t, IsValidCurrency("ZAR"))
	assert.False(t, IsValidCurrency("usd"))
	assert.False(t, IsValidCurrency("US"))
	assert.False(t, IsValidCurrency("USDT"))
}

func TestIsValidProvider(t *testing.T) {
	for _, p := range Providers {
		assert.True(t, IsValidProvider(p))
	}
	assert.False(t, IsValidProvider("swift"))
	assert.False(t, IsValidProvider("Venmo"))
	assert.False(t, IsValidProvider(""))
}
