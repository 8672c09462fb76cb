package validators

import "strings"

const maxPhoneDigits = 11

// OnlyDigits remove tudo que não for dígito
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhoneBR aplica a máscara conforme os dígitos são digitados:
// (DD) DDDD-DDDD com até 10 dígitos, (DD) DDDDD-DDDD com 11.
func FormatPhoneBR(s string) string {
	d := OnlyDigits(s)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}

	switch {
	case len(d) == 0:
		return ""
	case len(d) <= 2:
		return "(" + d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// IsValidPhoneBR: fixo (10) ou celular (11 dígitos)
func IsValidPhoneBR(s string) bool {
	n := len(OnlyDigits(s))
	return n == 10 || n == 11
}

// NormalizePhoneToDigits devolve o valor de envio; ok é false quando não há dígitos
func NormalizePhoneToDigits(s string) (digits string, ok bool) {
	digits = OnlyDigits(s)
	return digits, digits != ""
}
