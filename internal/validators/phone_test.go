package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "11999998888", OnlyDigits("(11) 99999-8888"))
	assert.Equal(t, "", OnlyDigits("abc"))
}

func TestFormatPhoneBR(t *testing.T) {
	cases := map[string]string{
		"":                "",
		"1":               "(1",
		"11":              "(11",
		"119":             "(11) 9",
		"119999":          "(11) 9999",
		"1199998":         "(11) 9999-8",
		"1199998888":      "(11) 9999-8888",
		"11999998888":     "(11) 99999-8888",
		"119999988889999": "(11) 99999-8888",
		"(11) 99999-8888": "(11) 99999-8888",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatPhoneBR(in), "input %q", in)
	}
}

func TestIsValidPhoneBR(t *testing.T) {
	assert.True(t, IsValidPhoneBR("1199998888"))
	assert.True(t, IsValidPhoneBR("(11) 99999-8888"))
	assert.False(t, IsValidPhoneBR("119999888"))
	assert.False(t, IsValidPhoneBR("119999988881"))
	assert.False(t, IsValidPhoneBR(""))
}

func TestNormalizePhoneToDigits(t *testing.T) {
	d, ok := NormalizePhoneToDigits("(11) 99999-8888")
	assert.True(t, ok)
	assert.Equal(t, "11999998888", d)

	_, ok = NormalizePhoneToDigits(" - ")
	assert.False(t, ok)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
